package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/peoplemap/internal/appcontext"
	"github.com/agentstation/peoplemap/internal/sources/local"
	"github.com/agentstation/peoplemap/pkg/logging"
	"github.com/agentstation/peoplemap/pkg/sources"
)

func newApp(t *testing.T, files map[string]string) *appcontext.Mock {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return &appcontext.Mock{
		FetcherFunc: func() *local.Fetcher {
			return local.New(local.WithDir(dir), local.WithLogger(logging.NewNopLogger()))
		},
	}
}

func run(t *testing.T, app *appcontext.Mock, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSync(t *testing.T) {
	app := newApp(t, map[string]string{
		"bamboo.yaml": "employees:\n  - id: \"1\"\n    displayName: Ada Lovelace\n  - id: \"2\"\n    displayName: Charles Babbage\n",
	})

	out, err := run(t, app)
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Sources, 3)
	assert.Equal(t, SourceReport{Source: "bamboo", File: report.Sources[0].File, People: 2, Raw: 2}, report.Sources[0])
	assert.NotEmpty(t, report.Sources[1].Error)
	assert.Empty(t, report.People)

	snap := app.Store().Snapshot()
	assert.Equal(t, []string{"bamboo:1", "bamboo:2"}, snap.Data.IDs)
	loaded, _ := snap.Loaded.Get(sources.Bamboo)
	failed, _ := snap.Error.Get(sources.GoogleContacts)
	assert.True(t, loaded)
	assert.True(t, failed)
	assert.False(t, sources.Any(snap.Loading))
}

func TestSyncPeopleLimit(t *testing.T) {
	app := newApp(t, map[string]string{
		"gsuiteAdmin.json": `{"users": [{"id": "a", "primaryEmail": "a@x"}, {"id": "b"}]}`,
	})

	out, err := run(t, app, "--source", "gsuiteAdmin", "--people", "--limit", "1")
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Sources, 1)
	require.Len(t, report.People, 1)
	assert.Equal(t, "a", report.People[0].ID)
}

func TestSyncErrors(t *testing.T) {
	app := newApp(t, nil)

	_, err := run(t, app)
	assert.Error(t, err)

	_, err = run(t, app, "--source", "ldap")
	assert.Error(t, err)
}

func TestSyncRepeatedSourceLoadsOnce(t *testing.T) {
	app := newApp(t, map[string]string{
		"bamboo.yaml": "employees:\n  - id: \"1\"\n    displayName: Ada Lovelace\n",
	})

	out, err := run(t, app, "--source", "bamboo", "--source", "bamboo")
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Sources, 1)
	assert.Equal(t, "bamboo", report.Sources[0].Source)
	assert.Equal(t, []string{"bamboo:1"}, app.Store().Snapshot().Data.IDs)
}
