package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/peoplemap/internal/sources/local"
	"github.com/agentstation/peoplemap/pkg/logging"
	"github.com/agentstation/peoplemap/pkg/people"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	StoreFunc        func() *people.Store
	FetcherFunc      func() *local.Fetcher
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string

	store *people.Store
}

// Store returns the store from StoreFunc, or one store shared across calls.
func (m *Mock) Store() *people.Store {
	if m.StoreFunc != nil {
		return m.StoreFunc()
	}
	if m.store == nil {
		m.store = people.NewStore(people.WithStoreLogger(m.Logger()))
	}
	return m.store
}

// Fetcher returns the fetcher from FetcherFunc or a default fetcher.
func (m *Mock) Fetcher() *local.Fetcher {
	if m.FetcherFunc != nil {
		return m.FetcherFunc()
	}
	return local.New(local.WithLogger(m.Logger()))
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// OutputFormat returns the format using the mock function or "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// Version returns a version using the mock function or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

var _ Interface = (*Mock)(nil)
