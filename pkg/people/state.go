package people

import (
	"github.com/agentstation/peoplemap/pkg/collection"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// RawData holds one raw collection per source.
type RawData struct {
	Bamboo         collection.State[sources.BambooEmployee]      `json:"bamboo" yaml:"bamboo"`
	GoogleContacts collection.State[sources.GoogleContactsEntry] `json:"google" yaml:"google"`
	GSuiteAdmin    collection.State[sources.GSuiteAdminUser]     `json:"gsuiteAdmin" yaml:"gsuiteAdmin"`
}

// Len returns the number of raw records stored for id.
func (r RawData) Len(id sources.ID) int {
	switch id {
	case sources.Bamboo:
		return r.Bamboo.Len()
	case sources.GoogleContacts:
		return r.GoogleContacts.Len()
	case sources.GSuiteAdmin:
		return r.GSuiteAdmin.Len()
	default:
		return 0
	}
}

// State is the aggregate state: lifecycle flags per source, optimistic
// markers, the search generation and the canonical and raw collections.
type State struct {
	Loading  sources.Flags `json:"loading" yaml:"loading"`
	Loaded   sources.Flags `json:"loaded" yaml:"loaded"`
	Error    sources.Flags `json:"error" yaml:"error"`
	Creating sources.Flags `json:"creatingPerson" yaml:"creatingPerson"`

	// Updating lists pending update identities oldest first.
	Updating collection.Multiset `json:"updatingIds" yaml:"updatingIds"`
	// Deleting lists pending delete identities newest first.
	Deleting collection.Multiset `json:"deletingIds" yaml:"deletingIds"`

	Searching bool   `json:"searching" yaml:"searching"`
	Query     string `json:"query" yaml:"query"`

	Data collection.State[PersonInfo] `json:"data" yaml:"data"`
	Raw  RawData                      `json:"rawData" yaml:"rawData"`
}

// NewState returns the initial state: nothing loaded, nothing pending.
func NewState() State {
	return State{
		Data: collection.New[PersonInfo](),
		Raw: RawData{
			Bamboo:         collection.New[sources.BambooEmployee](),
			GoogleContacts: collection.New[sources.GoogleContactsEntry](),
			GSuiteAdmin:    collection.New[sources.GSuiteAdminUser](),
		},
	}
}

// Clone returns a deep copy of s: no map, slice or pointer is shared, so a
// snapshot can be edited without touching the live state.
func (s State) Clone() State {
	out := s
	out.Updating = s.Updating.Clone()
	out.Deleting = s.Deleting.Clone()
	out.Data = deepClone(s.Data)
	out.Raw = RawData{
		Bamboo:         deepClone(s.Raw.Bamboo),
		GoogleContacts: deepClone(s.Raw.GoogleContacts),
		GSuiteAdmin:    deepClone(s.Raw.GSuiteAdmin),
	}
	return out
}

func deepClone[T interface{ Clone() T }](c collection.State[T]) collection.State[T] {
	out := c.Clone()
	for id, v := range out.ByID {
		out.ByID[id] = v.Clone()
	}
	return out
}

// People returns canonical records in insertion order.
func (s State) People() []PersonInfo {
	return s.Data.List()
}

// Person returns the canonical record addressed by ref.
func (s State) Person(ref Ref) (PersonInfo, bool) {
	return s.Data.Get(RefIdentity(ref))
}

// IsUpdating reports whether an update of ref is in flight.
func (s State) IsUpdating(ref Ref) bool {
	return s.Updating.Contains(RefIdentity(ref))
}

// IsDeleting reports whether a delete of ref is in flight.
func (s State) IsDeleting(ref Ref) bool {
	return s.Deleting.Contains(RefIdentity(ref))
}
