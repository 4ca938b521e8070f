package people

import "github.com/agentstation/peoplemap/pkg/sources"

// ActionType names a transition of the people state machine.
type ActionType string

// String returns the string representation of an action type.
func (t ActionType) String() string {
	return string(t)
}

// Action types.
const (
	ActionSearchStart    ActionType = "people/searchStart"
	ActionSearchStop     ActionType = "people/searchStop"
	ActionSearchComplete ActionType = "people/searchComplete"
	ActionByIDSuccess    ActionType = "people/byIdSuccess"
	ActionCreateStart    ActionType = "people/createStart"
	ActionCreateSuccess  ActionType = "people/createSuccess"
	ActionCreateFail     ActionType = "people/createFail"
	ActionUpdateStart    ActionType = "people/updateStart"
	ActionUpdateSuccess  ActionType = "people/updateSuccess"
	ActionUpdateFail     ActionType = "people/updateFail"
	ActionDeleteStart    ActionType = "people/deleteStart"
	ActionDeleteSuccess  ActionType = "people/deleteSuccess"
	ActionDeleteFail     ActionType = "people/deleteFail"
	ActionLoadStart      ActionType = "people/loadStart"
	ActionLoadSuccess    ActionType = "people/loadSuccess"
	ActionLoadFail       ActionType = "people/loadFail"
)

// Action is one of the transitions defined in this package. The set is
// closed: only types declared here implement it.
type Action interface {
	Type() ActionType
	action()
}

// SearchStart begins a search generation identified by Query.
type SearchStart struct {
	Query string
}

// SearchStop ends the in-flight indicator of the search for Query.
type SearchStop struct {
	Query string
}

// SearchComplete delivers the results of the search for Query.
type SearchComplete struct {
	Query string
	Data  []PersonInfo
	Raw   RawBatch
}

// ByIDSuccess delivers a single person fetched by id.
type ByIDSuccess struct {
	Data PersonInfo
	Raw  RawItem
}

// CreateStart marks a create in flight against Source.
type CreateStart struct {
	Source sources.ID
}

// CreateSuccess delivers the person created in Source.
type CreateSuccess struct {
	Source sources.ID
	Data   PersonInfo
}

// CreateFail reports that a create against Source failed.
type CreateFail struct {
	Source sources.ID
	Err    error
}

// UpdateStart marks an update of Ref in flight.
type UpdateStart struct {
	Ref Ref
}

// UpdateSuccess delivers the updated person.
type UpdateSuccess struct {
	Source sources.ID
	Data   PersonInfo
}

// UpdateFail reports that an update of Ref failed.
type UpdateFail struct {
	Ref Ref
	Err error
}

// DeleteStart marks a delete of Ref in flight.
type DeleteStart struct {
	Ref Ref
}

// DeleteSuccess reports that Ref was deleted upstream.
type DeleteSuccess struct {
	Ref Ref
}

// DeleteFail reports that a delete of Ref failed.
type DeleteFail struct {
	Ref Ref
	Err error
}

// LoadStart marks a bulk load from Source in flight.
type LoadStart struct {
	Source sources.ID
}

// LoadSuccess delivers a bulk load from Source.
type LoadSuccess struct {
	Source sources.ID
	Data   []PersonInfo
	Raw    RawBatch
}

// LoadFail reports that a bulk load from Source failed.
type LoadFail struct {
	Source sources.ID
	Err    error
}

func (SearchStart) Type() ActionType    { return ActionSearchStart }
func (SearchStop) Type() ActionType     { return ActionSearchStop }
func (SearchComplete) Type() ActionType { return ActionSearchComplete }
func (ByIDSuccess) Type() ActionType    { return ActionByIDSuccess }
func (CreateStart) Type() ActionType    { return ActionCreateStart }
func (CreateSuccess) Type() ActionType  { return ActionCreateSuccess }
func (CreateFail) Type() ActionType     { return ActionCreateFail }
func (UpdateStart) Type() ActionType    { return ActionUpdateStart }
func (UpdateSuccess) Type() ActionType  { return ActionUpdateSuccess }
func (UpdateFail) Type() ActionType     { return ActionUpdateFail }
func (DeleteStart) Type() ActionType    { return ActionDeleteStart }
func (DeleteSuccess) Type() ActionType  { return ActionDeleteSuccess }
func (DeleteFail) Type() ActionType     { return ActionDeleteFail }
func (LoadStart) Type() ActionType      { return ActionLoadStart }
func (LoadSuccess) Type() ActionType    { return ActionLoadSuccess }
func (LoadFail) Type() ActionType       { return ActionLoadFail }

func (SearchStart) action()    {}
func (SearchStop) action()     {}
func (SearchComplete) action() {}
func (ByIDSuccess) action()    {}
func (CreateStart) action()    {}
func (CreateSuccess) action()  {}
func (CreateFail) action()     {}
func (UpdateStart) action()    {}
func (UpdateSuccess) action()  {}
func (UpdateFail) action()     {}
func (DeleteStart) action()    {}
func (DeleteSuccess) action()  {}
func (DeleteFail) action()     {}
func (LoadStart) action()      {}
func (LoadSuccess) action()    {}
func (LoadFail) action()       {}
