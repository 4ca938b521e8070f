package people

import (
	"fmt"

	"github.com/agentstation/peoplemap/pkg/collection"
	"github.com/agentstation/peoplemap/pkg/errors"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// Outcome describes what applying an action did. Transitions never fail;
// Outcome only makes discards and skips observable to the caller.
type Outcome struct {
	Action ActionType `json:"action" yaml:"action"`

	// Stale is set when a search response or stop belonged to a superseded
	// query and was dropped.
	Stale bool `json:"stale,omitempty" yaml:"stale,omitempty"`

	// Ignored is set when the payload could not address any state, for example
	// an unknown source. State is unchanged in that case.
	Ignored error `json:"-" yaml:"-"`

	// Report lists records stored and skipped by a merge.
	Report MergeReport `json:"report" yaml:"report"`
}

// Reducer applies actions to State.
type Reducer struct {
	resolvers sources.Resolvers
}

// ReducerOption configures a Reducer.
type ReducerOption func(*Reducer)

// WithResolvers overrides the identity resolvers. Nil fields keep the default.
func WithResolvers(r sources.Resolvers) ReducerOption {
	return func(red *Reducer) {
		if r.Bamboo != nil {
			red.resolvers.Bamboo = r.Bamboo
		}
		if r.GoogleContacts != nil {
			red.resolvers.GoogleContacts = r.GoogleContacts
		}
		if r.GSuiteAdmin != nil {
			red.resolvers.GSuiteAdmin = r.GSuiteAdmin
		}
	}
}

// NewReducer creates a Reducer with the default resolvers.
func NewReducer(opts ...ReducerOption) *Reducer {
	r := &Reducer{resolvers: sources.DefaultResolvers()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultReducer = NewReducer()

// Reduce is the pure form of Apply using the default resolvers: prev is left
// unchanged and the next state is returned.
func Reduce(prev State, a Action) (State, Outcome) {
	return defaultReducer.Reduce(prev, a)
}

// Reduce clones prev, applies a to the clone and returns it.
func (r *Reducer) Reduce(prev State, a Action) (State, Outcome) {
	next := prev.Clone()
	outcome := r.Apply(&next, a)
	return next, outcome
}

// Apply mutates s according to a.
func (r *Reducer) Apply(s *State, a Action) Outcome {
	if a == nil {
		return Outcome{Ignored: errors.NewValidationError("action", nil, "action is nil")}
	}
	out := Outcome{Action: a.Type()}

	switch act := a.(type) {
	case SearchStart:
		s.Searching = true
		s.Query = act.Query

	case SearchStop:
		if act.Query != s.Query {
			out.Stale = true
			break
		}
		s.Searching = false

	case SearchComplete:
		if act.Query != s.Query {
			out.Stale = true
			break
		}
		s.Searching = false
		out.Report = MergeBatch(s, act.Data, act.Raw, r.resolvers)

	case ByIDSuccess:
		out.Report = MergeItem(s, act.Data, act.Raw, r.resolvers)

	case CreateStart:
		out.Ignored = setFlag(&s.Creating, act.Source, true)

	case CreateSuccess:
		if out.Ignored = setFlag(&s.Creating, act.Source, false); out.Ignored != nil {
			break
		}
		out.Report.Data = createOne(&s.Data, act.Data, personIdentity)

	case CreateFail:
		out.Ignored = setFlag(&s.Creating, act.Source, false)

	case UpdateStart:
		out.Ignored = withRef(act.Ref, s.Updating.Append)

	case UpdateFail:
		out.Ignored = withRef(act.Ref, func(id string) { s.Updating.Remove(id) })

	case UpdateSuccess:
		id, err := personIdentity(act.Data)
		if err != nil {
			out.Ignored = err
			break
		}
		s.Updating.Remove(id)
		// The identity was already validated, Update cannot fail here.
		_ = collection.Update(&s.Data, act.Data, personIdentity)

	case DeleteStart:
		out.Ignored = withRef(act.Ref, s.Deleting.Prepend)

	case DeleteFail:
		out.Ignored = withRef(act.Ref, func(id string) { s.Deleting.Remove(id) })

	case DeleteSuccess:
		out.Ignored = withRef(act.Ref, func(id string) {
			collection.Delete(&s.Data, id)
			s.Deleting.Remove(id)
		})

	case LoadStart:
		if out.Ignored = setFlag(&s.Loading, act.Source, true); out.Ignored != nil {
			break
		}
		s.Error.Set(act.Source, false)

	case LoadSuccess:
		if out.Ignored = setFlag(&s.Loading, act.Source, false); out.Ignored != nil {
			break
		}
		s.Loaded.Set(act.Source, true)
		s.Error.Set(act.Source, false)
		out.Report = MergeBatch(s, act.Data, act.Raw, r.resolvers)

	case LoadFail:
		if out.Ignored = setFlag(&s.Loading, act.Source, false); out.Ignored != nil {
			break
		}
		s.Error.Set(act.Source, true)

	default:
		out.Ignored = errors.NewValidationError("action", fmt.Sprintf("%T", a), "unsupported action")
	}

	return out
}

func setFlag(f *sources.Flags, id sources.ID, v bool) error {
	if !f.Set(id, v) {
		return errors.NewValidationError("source", id.String(), errors.ErrUnknownSource.Error())
	}
	return nil
}

func withRef(ref Ref, fn func(id string)) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	fn(RefIdentity(ref))
	return nil
}
