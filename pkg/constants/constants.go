// Package constants provides shared constants used throughout the peoplemap codebase.
// This includes timeouts, limits, file permissions and source fixture file names
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// FetchTimeout bounds loading all per-source batches in one sync
	FetchTimeout = 2 * time.Minute

	// ShutdownTimeout is how long the CLI waits for graceful shutdown
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxConcurrentSources is the maximum number of sources loaded concurrently
	MaxConcurrentSources = 3

	// MaxFixtureBytes caps a single fixture file read from disk
	MaxFixtureBytes = 64 << 20
)

// Fixture file extensions tried, in order, for each source.
var FixtureExtensions = []string{".yaml", ".yml", ".json"}

// Configuration defaults
const (
	// DefaultFixturesDir is where sync looks for per-source raw batches
	DefaultFixturesDir = "fixtures"

	// ConfigFileName is the config file searched in $HOME and the working dir
	ConfigFileName = ".peoplemap"

	// EnvPrefix prefixes environment variables read through viper
	EnvPrefix = "PEOPLEMAP"
)
