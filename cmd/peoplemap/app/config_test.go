package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/peoplemap/pkg/constants"
	"github.com/agentstation/peoplemap/pkg/errors"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultFixturesDir, config.FixturesDir)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
	assert.Empty(t, config.LogLevel)
}

// TestConfigEnvironmentVariables verifies environment variable loading.
func TestConfigEnvironmentVariables(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PEOPLEMAP_VERBOSE", "true")
	t.Setenv("PEOPLEMAP_FORMAT", "json")
	t.Setenv("PEOPLEMAP_FIXTURES_DIR", "/srv/people")
	t.Setenv("PEOPLEMAP_LOG_LEVEL", "debug")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, config.Verbose)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "/srv/people", config.FixturesDir)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".peoplemap.yaml"),
		[]byte("fixtures_dir: ./people\nformat: yaml\n"), 0o644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "./people", config.FixturesDir)
	assert.Equal(t, "yaml", config.Format)
	assert.NotEmpty(t, config.ConfigFile)

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: trace\n"), 0o644))
		config, err := loadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "trace", config.LogLevel)
		assert.Equal(t, path, config.ConfigFile)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		var cfgErr *errors.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("PEOPLEMAP_FIXTURES_DIR=from-env-file\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PEOPLEMAP_FIXTURES_DIR") })

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-env-file", config.FixturesDir)
}

func TestUpdateFromFlags(t *testing.T) {
	c := &Config{Format: "yaml", FixturesDir: "a", LogLevel: "info"}
	c.UpdateFromFlags(true, false, true, "", "debug", "b")

	assert.True(t, c.Verbose)
	assert.True(t, c.NoColor)
	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "b", c.FixturesDir)
}
