package people

import (
	"reflect"
	"sync"

	"github.com/agentstation/peoplemap/pkg/collection"
)

// Hook function types for canonical collection changes
type (
	// PersonAddedHook is called when a person enters the canonical collection
	PersonAddedHook func(person PersonInfo)

	// PersonUpdatedHook is called when a stored person changes
	PersonUpdatedHook func(old, new PersonInfo)

	// PersonRemovedHook is called when a person leaves the canonical collection
	PersonRemovedHook func(person PersonInfo)
)

// hooks manages change callbacks
type hooks struct {
	mu              sync.RWMutex
	onPersonAdded   []PersonAddedHook
	onPersonUpdated []PersonUpdatedHook
	onPersonRemoved []PersonRemovedHook
}

func newHooks() *hooks {
	return &hooks{}
}

func (h *hooks) addAdded(fn PersonAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPersonAdded = append(h.onPersonAdded, fn)
}

func (h *hooks) addUpdated(fn PersonUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPersonUpdated = append(h.onPersonUpdated, fn)
}

func (h *hooks) addRemoved(fn PersonRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPersonRemoved = append(h.onPersonRemoved, fn)
}

func (h *hooks) empty() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.onPersonAdded) == 0 && len(h.onPersonUpdated) == 0 && len(h.onPersonRemoved) == 0
}

// change is one difference between two canonical collections.
type change struct {
	old, new *PersonInfo
}

// diffPeople compares two canonical collections. Additions and updates follow
// the order of next, removals the order of prev.
func diffPeople(prev, next collection.State[PersonInfo]) []change {
	var changes []change
	for _, id := range next.IDs {
		n := next.ByID[id]
		if o, ok := prev.ByID[id]; ok {
			if !reflect.DeepEqual(o, n) {
				changes = append(changes, change{old: &o, new: &n})
			}
			continue
		}
		changes = append(changes, change{new: &n})
	}
	for _, id := range prev.IDs {
		if _, ok := next.ByID[id]; !ok {
			o := prev.ByID[id]
			changes = append(changes, change{old: &o})
		}
	}
	return changes
}

// trigger runs the registered hooks for changes.
func (h *hooks) trigger(changes []change) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range changes {
		switch {
		case c.old == nil:
			for _, hook := range h.onPersonAdded {
				hook(c.new.Clone())
			}
		case c.new == nil:
			for _, hook := range h.onPersonRemoved {
				hook(c.old.Clone())
			}
		default:
			for _, hook := range h.onPersonUpdated {
				hook(c.old.Clone(), c.new.Clone())
			}
		}
	}
}
