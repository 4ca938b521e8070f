// Package collection provides a normalized collection: entities stored by a
// stable identity string together with the ordered list of those identities.
//
// The byId map and the ids slice always describe the same key set. ids keeps
// first-insertion order; updates replace values in place and never move an id.
//
// Operations are plain functions over *State[T] so that callers owning a larger
// state value can embed several collections and mutate them in one transition.
package collection

import (
	"maps"
	"slices"
)

// State is the normalized storage for entities of type T.
type State[T any] struct {
	ByID map[string]T `json:"byId" yaml:"byId"`
	IDs  []string     `json:"ids" yaml:"ids"`
}

// IdentityFunc derives the identity of an item. A non-nil error means the item
// has no usable identity and must not be stored.
type IdentityFunc[T any] func(T) (string, error)

// Skip describes an item that a merge refused to store.
type Skip struct {
	Index int   `json:"index" yaml:"index"`
	Err   error `json:"-" yaml:"-"`
}

// MergeResult reports how many items a merge stored and which it skipped.
type MergeResult struct {
	Merged  int    `json:"merged" yaml:"merged"`
	Skipped []Skip `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// New creates an empty state.
func New[T any]() State[T] {
	return State[T]{
		ByID: make(map[string]T),
		IDs:  []string{},
	}
}

// Create upserts item. A new id is appended to IDs; an existing id keeps its
// position and only its value is replaced.
func Create[T any](s *State[T], item T, idOf IdentityFunc[T]) error {
	id, err := idOf(item)
	if err != nil {
		return err
	}
	put(s, id, item)
	return nil
}

// Update replaces the stored value for item's id. It does nothing when the id
// is not already present.
func Update[T any](s *State[T], item T, idOf IdentityFunc[T]) error {
	id, err := idOf(item)
	if err != nil {
		return err
	}
	if _, ok := s.ByID[id]; ok {
		s.ByID[id] = item
	}
	return nil
}

// Delete removes id from both ByID and IDs. Unknown ids are ignored.
func Delete[T any](s *State[T], id string) {
	if _, ok := s.ByID[id]; !ok {
		return
	}
	delete(s.ByID, id)
	if i := slices.Index(s.IDs, id); i >= 0 {
		s.IDs = slices.Delete(s.IDs, i, i+1)
	}
}

// Merge folds items into s in input order. Existing ids are replaced in place,
// new ids are appended, and ids missing from items are left untouched.
// Items whose identity cannot be derived are skipped and reported.
func Merge[T any](s *State[T], items []T, idOf IdentityFunc[T]) MergeResult {
	var result MergeResult
	for i, item := range items {
		id, err := idOf(item)
		if err != nil {
			result.Skipped = append(result.Skipped, Skip{Index: i, Err: err})
			continue
		}
		put(s, id, item)
		result.Merged++
	}
	return result
}

func put[T any](s *State[T], id string, item T) {
	if s.ByID == nil {
		s.ByID = make(map[string]T)
	}
	if _, exists := s.ByID[id]; !exists {
		s.IDs = append(s.IDs, id)
	}
	s.ByID[id] = item
}

// Get returns the item stored under id.
func (s State[T]) Get(id string) (T, bool) {
	item, ok := s.ByID[id]
	return item, ok
}

// Has reports whether id is stored.
func (s State[T]) Has(id string) bool {
	_, ok := s.ByID[id]
	return ok
}

// Len returns the number of stored items.
func (s State[T]) Len() int {
	return len(s.IDs)
}

// List returns the stored items in id order.
func (s State[T]) List() []T {
	items := make([]T, 0, len(s.IDs))
	for _, id := range s.IDs {
		items = append(items, s.ByID[id])
	}
	return items
}

// Clone returns a copy whose map and slice share nothing with s.
// Values are copied shallowly.
func (s State[T]) Clone() State[T] {
	out := State[T]{
		ByID: make(map[string]T, len(s.ByID)),
		IDs:  slices.Clone(s.IDs),
	}
	if out.IDs == nil {
		out.IDs = []string{}
	}
	maps.Copy(out.ByID, s.ByID)
	return out
}
