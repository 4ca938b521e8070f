// Package appcontext provides the shared application context interface
// used by all commands.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/peoplemap/internal/sources/local"
	"github.com/agentstation/peoplemap/pkg/people"
)

// Interface defines what commands need from the application. The App in
// cmd/peoplemap/app implements it; tests use Mock.
type Interface interface {
	// Store returns the process-wide people store, creating it lazily.
	Store() *people.Store

	// Fetcher returns the fixture fetcher configured for this run.
	Fetcher() *local.Fetcher

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string
}
