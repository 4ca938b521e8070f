// Package logging provides structured logging for the peoplemap system using zerolog.
// Console output is used when stderr is a terminal, JSON otherwise.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("source", "bamboo").Int("records", 12).Msg("Loaded batch")
//
//	ctx := logging.WithSource(context.Background(), "google")
//	logging.FromContext(ctx).Warn().Msg("Skipped contact without identity")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agentstation/peoplemap/pkg/constants"
)

var defaultLogger zerolog.Logger

func init() {
	defaultLogger = NewLoggerFromConfig(envConfig())
}

// envConfig reads PEOPLEMAP_LOG_LEVEL and PEOPLEMAP_LOG_FORMAT so that
// library users get sensible output before the CLI configures anything.
func envConfig() *Config {
	cfg := DefaultConfig()
	if level := os.Getenv(constants.EnvPrefix + "_LOG_LEVEL"); level != "" {
		cfg.Level = level
	} else if os.Getenv(constants.EnvPrefix+"_DEBUG") != "" {
		cfg.Level = "debug"
	}
	if format := os.Getenv(constants.EnvPrefix + "_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the default logger and zerolog's global one.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
