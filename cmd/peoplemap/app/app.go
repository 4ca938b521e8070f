// Package app provides the application context and dependency management
// for the peoplemap CLI. It centralizes configuration, logging and the
// people store so commands receive them through appcontext.Interface.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/peoplemap/internal/appcontext"
	"github.com/agentstation/peoplemap/internal/sources/local"
	"github.com/agentstation/peoplemap/pkg/errors"
	"github.com/agentstation/peoplemap/pkg/people"
)

// App represents the peoplemap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Store instance (lazy-initialized, singleton)
	mu    sync.RWMutex
	store *people.Store
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Store returns the people store, creating it lazily if needed.
func (a *App) Store() *people.Store {
	a.mu.RLock()
	if a.store != nil {
		s := a.store
		a.mu.RUnlock()
		return s
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.store == nil {
		a.store = people.NewStore(people.WithStoreLogger(a.logger))
	}
	return a.store
}

// Fetcher returns a fixture fetcher for the configured directory.
func (a *App) Fetcher() *local.Fetcher {
	return local.New(
		local.WithDir(a.config.FixturesDir),
		local.WithLogger(a.logger),
	)
}

// Shutdown logs a summary of the store. The store holds no external
// resources, so nothing else needs releasing.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	store := a.store
	a.mu.RUnlock()

	if store != nil {
		snap := store.Snapshot()
		a.logger.Debug().
			Str("session_id", store.SessionID()).
			Int("people", snap.Data.Len()).
			Int("updating", snap.Updating.Len()).
			Int("deleting", snap.Deleting.Len()).
			Msg("Shutting down")
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets a custom store (useful for testing).
func WithStore(store *people.Store) Option {
	return func(a *App) error {
		a.store = store
		return nil
	}
}

var _ appcontext.Interface = (*App)(nil)
