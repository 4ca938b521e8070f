package people_test

import (
	"github.com/agentstation/peoplemap/pkg/people"
	"github.com/agentstation/peoplemap/pkg/sources"
)

func person(source sources.ID, id, name string) people.PersonInfo {
	return people.PersonInfo{Source: source, ID: id, DisplayName: name}
}

func ref(source sources.ID, id string) people.Ref {
	return people.Ref{Source: source, ID: id}
}

func contact(rawID string) sources.GoogleContactsEntry {
	if rawID == "" {
		return sources.GoogleContactsEntry{}
	}
	return sources.GoogleContactsEntry{ID: &sources.GDataText{T: rawID}}
}

// apply runs actions in order against a fresh state and returns the result.
func apply(actions ...people.Action) people.State {
	s := people.NewState()
	r := people.NewReducer()
	for _, a := range actions {
		r.Apply(&s, a)
	}
	return s
}
