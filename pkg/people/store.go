package people

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agentstation/peoplemap/pkg/collection"
	"github.com/agentstation/peoplemap/pkg/logging"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// Store owns a State and serializes transitions on it. Callers dispatch
// actions and read snapshots; they never see the live state.
type Store struct {
	mu        sync.RWMutex
	state     State
	reducer   *Reducer
	hooks     *hooks
	sessionID string
	logger    *zerolog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithReducer sets the reducer used for transitions.
func WithReducer(r *Reducer) StoreOption {
	return func(s *Store) {
		if r != nil {
			s.reducer = r
		}
	}
}

// WithInitialState seeds the store. The state is cloned.
func WithInitialState(state State) StoreOption {
	return func(s *Store) {
		s.state = state.Clone()
	}
}

// WithSessionID sets the id attached to every log line of this store.
func WithSessionID(id string) StoreOption {
	return func(s *Store) {
		s.sessionID = id
	}
}

// WithStoreLogger sets the fallback logger used when the dispatch context
// carries none.
func WithStoreLogger(logger *zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a store holding NewState().
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		state:     NewState(),
		reducer:   defaultReducer,
		hooks:     newHooks(),
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SessionID returns the id of this store's dispatch session.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// OnPersonAdded registers a callback for people entering the collection
func (s *Store) OnPersonAdded(fn PersonAddedHook) {
	s.hooks.addAdded(fn)
}

// OnPersonUpdated registers a callback for stored people that change
func (s *Store) OnPersonUpdated(fn PersonUpdatedHook) {
	s.hooks.addUpdated(fn)
}

// OnPersonRemoved registers a callback for people leaving the collection
func (s *Store) OnPersonRemoved(fn PersonRemovedHook) {
	s.hooks.addRemoved(fn)
}

// Dispatch applies a to the state. Hooks run after the state lock is released.
func (s *Store) Dispatch(ctx context.Context, a Action) Outcome {
	watch := !s.hooks.empty()

	s.mu.Lock()
	var prev collection.State[PersonInfo]
	if watch {
		prev = s.state.Data.Clone()
	}
	outcome := s.reducer.Apply(&s.state, a)
	var changes []change
	if watch {
		changes = diffPeople(prev, s.state.Data)
	}
	s.mu.Unlock()

	s.log(ctx, outcome)

	if len(changes) > 0 {
		s.hooks.trigger(changes)
	}
	return outcome
}

func (s *Store) log(ctx context.Context, outcome Outcome) {
	logger := logging.FromContext(ctx)
	if logger == logging.Default() && s.logger != nil {
		logger = s.logger
	}
	lc := logger.With().Str("action", outcome.Action.String())
	if logging.SessionID(ctx) != s.sessionID {
		lc = lc.Str("session_id", s.sessionID)
	}
	l := lc.Logger()

	switch {
	case outcome.Ignored != nil:
		l.Warn().Err(outcome.Ignored).Msg("Action ignored")
	case outcome.Stale:
		l.Debug().Msg("Dropped response for superseded search")
	default:
		l.Trace().
			Int("merged", outcome.Report.Data.Merged).
			Msg("Action applied")
	}

	if skipped := outcome.Report.Skipped(); skipped > 0 {
		ev := l.Warn().Int("skipped", skipped)
		outcome.Report.Raw.Each(func(id sources.ID, res collection.MergeResult) {
			if len(res.Skipped) > 0 {
				ev = ev.Int("skipped_"+id.String(), len(res.Skipped))
			}
		})
		ev.Errs("reasons", outcome.Report.SkipErrors()).Msg("Skipped records without identity")
	}
}
