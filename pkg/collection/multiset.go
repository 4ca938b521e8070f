package collection

import (
	"encoding/json"
	"slices"
)

// Multiset is an ordered sequence of identities where duplicates are allowed.
// It tracks optimistic markers: every start adds one entry and every
// completion removes one matching entry, so overlapping operations on the same
// id each keep their own marker.
type Multiset struct {
	items []string
}

// NewMultiset creates a multiset holding ids in the given order.
func NewMultiset(ids ...string) Multiset {
	return Multiset{items: slices.Clone(ids)}
}

// Append adds id at the end (oldest first ordering).
func (m *Multiset) Append(id string) {
	m.items = append(m.items, id)
}

// Prepend adds id at the front (newest first ordering).
func (m *Multiset) Prepend(id string) {
	m.items = slices.Insert(m.items, 0, id)
}

// Remove deletes the first occurrence of id and reports whether one was found.
func (m *Multiset) Remove(id string) bool {
	i := slices.Index(m.items, id)
	if i < 0 {
		return false
	}
	m.items = slices.Delete(m.items, i, i+1)
	return true
}

// Contains reports whether at least one occurrence of id is present.
func (m Multiset) Contains(id string) bool {
	return slices.Contains(m.items, id)
}

// Count returns the number of occurrences of id.
func (m Multiset) Count(id string) int {
	n := 0
	for _, item := range m.items {
		if item == id {
			n++
		}
	}
	return n
}

// Len returns the total number of entries.
func (m Multiset) Len() int {
	return len(m.items)
}

// Slice returns a copy of the entries in order.
func (m Multiset) Slice() []string {
	if m.items == nil {
		return []string{}
	}
	return slices.Clone(m.items)
}

// Clone returns an independent copy.
func (m Multiset) Clone() Multiset {
	return Multiset{items: slices.Clone(m.items)}
}

// MarshalJSON encodes the multiset as a plain array.
func (m Multiset) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Slice())
}

// MarshalYAML encodes the multiset as a plain sequence.
func (m Multiset) MarshalYAML() (any, error) {
	return m.Slice(), nil
}
