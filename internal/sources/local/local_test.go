package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/agentstation/peoplemap/pkg/errors"
	"github.com/agentstation/peoplemap/pkg/logging"
	"github.com/agentstation/peoplemap/pkg/people"
	"github.com/agentstation/peoplemap/pkg/sources"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const bambooYAML = `employees:
  - id: "42"
    firstName: ada
    lastName: lovelace
    workEmail: Ada@Example.com
    jobTitle: Analyst
  - id: "43"
    displayName: Charles Babbage
    jobTitle: Engineer
  - firstName: nobody
`

const googleJSON = `{"feed": {"entry": [
  {"id": {"$t": "https://www.google.com/m8/feeds/contacts/me/base/XYZ123"},
   "title": {"$t": "Grace Hopper"},
   "gd$email": [{"address": "grace@navy.example", "primary": "true"}]},
  {"id": {"$t": "broken"}, "title": {"$t": "No Id"}}
]}}`

const gsuiteYAML = `users:
  - id: u1
    primaryEmail: alan@corp.example
    name:
      givenName: Alan
      familyName: Turing
    organizations:
      - title: Cryptanalyst
        department: Hut 8
        primary: true
`

func writeFixtures(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func newFetcher(dir string) *Fetcher {
	return New(WithDir(dir), WithLogger(logging.NewNopLogger()))
}

func TestFetch(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		"bamboo.yaml":     bambooYAML,
		"google.json":     googleJSON,
		"gsuiteAdmin.yml": gsuiteYAML,
	})
	f := newFetcher(dir)
	ctx := context.Background()

	t.Run("bamboo yaml", func(t *testing.T) {
		res := f.Fetch(ctx, sources.Bamboo)
		require.NoError(t, res.Err)
		assert.Equal(t, filepath.Join(dir, "bamboo.yaml"), res.File)
		require.Len(t, res.Data, 2)
		assert.Equal(t, "Ada Lovelace", res.Data[0].DisplayName)
		assert.Equal(t, []string{"ada@example.com"}, res.Data[0].Emails)
		assert.Len(t, res.Dropped, 1)

		raw, ok := res.Raw.Bamboo.Get()
		require.True(t, ok)
		assert.Len(t, raw, 3)
		assert.False(t, res.Raw.GoogleContacts.IsPresent())
	})

	t.Run("google json", func(t *testing.T) {
		res := f.Fetch(ctx, sources.GoogleContacts)
		require.NoError(t, res.Err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "XYZ123", res.Data[0].ID)
		assert.Equal(t, "Grace Hopper", res.Data[0].DisplayName)
		assert.Len(t, res.Dropped, 1)
	})

	t.Run("gsuite yml", func(t *testing.T) {
		res := f.Fetch(ctx, sources.GSuiteAdmin)
		require.NoError(t, res.Err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "Hut 8", res.Data[0].Department)
	})

	t.Run("unknown source", func(t *testing.T) {
		res := f.Fetch(ctx, "ldap")
		assert.ErrorIs(t, res.Err, errors.ErrUnknownSource)
	})
}

func TestFetchErrors(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		"bamboo.yaml": "employees: [unclosed",
		"google.json": "{",
	})
	f := newFetcher(dir)
	ctx := context.Background()

	res := f.Fetch(ctx, sources.Bamboo)
	var parseErr *errors.ParseError
	require.ErrorAs(t, res.Err, &parseErr)
	assert.Equal(t, "yaml", parseErr.Format)
	assert.Empty(t, res.Data)

	res = f.Fetch(ctx, sources.GoogleContacts)
	require.ErrorAs(t, res.Err, &parseErr)
	assert.Equal(t, "json", parseErr.Format)

	res = f.Fetch(ctx, sources.GSuiteAdmin)
	assert.True(t, errors.IsNotFound(res.Err))
	var srcErr *errors.SourceError
	require.ErrorAs(t, res.Err, &srcErr)
	assert.Equal(t, "gsuiteAdmin", srcErr.Source)

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		res := f.Fetch(cctx, sources.Bamboo)
		assert.ErrorIs(t, res.Err, context.Canceled)
	})
}

func TestFetchAll(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		"bamboo.yaml": bambooYAML,
		"google.json": googleJSON,
	})
	f := New(WithDir(dir), WithConcurrency(1), WithLogger(logging.NewNopLogger()))

	results, err := f.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, sources.Bamboo, results[0].Source)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, sources.GoogleContacts, results[1].Source)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, sources.GSuiteAdmin, results[2].Source)
	assert.True(t, errors.IsNotFound(results[2].Err))

	t.Run("results drive a store", func(t *testing.T) {
		store := people.NewStore(people.WithStoreLogger(logging.NewNopLogger()))
		ctx := context.Background()
		for _, r := range results {
			store.Dispatch(ctx, people.LoadStart{Source: r.Source})
			if r.Err != nil {
				store.Dispatch(ctx, r.Fail())
				continue
			}
			store.Dispatch(ctx, r.Success())
		}

		snap := store.Snapshot()
		assert.Equal(t, []string{"bamboo:42", "bamboo:43", "google:XYZ123"}, snap.Data.IDs)
		assert.Equal(t, []string{"42", "43"}, snap.Raw.Bamboo.IDs)
		assert.Equal(t, []string{"XYZ123"}, snap.Raw.GoogleContacts.IDs)
		failed, _ := snap.Error.Get(sources.GSuiteAdmin)
		assert.True(t, failed)
		loaded, _ := snap.Loaded.Get(sources.Bamboo)
		assert.True(t, loaded)
	})
}

func TestFilter(t *testing.T) {
	dir := writeFixtures(t, map[string]string{"bamboo.yaml": bambooYAML})
	res := newFetcher(dir).Fetch(context.Background(), sources.Bamboo)
	require.NoError(t, res.Err)

	got := res.Filter("LOVELACE")
	require.Len(t, got.Data, 1)
	assert.Equal(t, "42", got.Data[0].ID)
	raw, ok := got.Raw.Bamboo.Get()
	require.True(t, ok)
	require.Len(t, raw, 1)
	assert.Equal(t, "42", raw[0].ID)

	assert.Len(t, res.Filter("").Data, 2)
	assert.Empty(t, res.Filter("nobody-matches").Data)

	failed := Result{Source: sources.Bamboo, Err: errors.New("boom")}
	assert.Equal(t, failed, failed.Filter("x"))
}

func TestMatches(t *testing.T) {
	p := people.PersonInfo{DisplayName: "Grace Hopper", Emails: []string{"grace@navy.example"}, Department: "Navy"}
	assert.True(t, Matches(p, "hopper"))
	assert.True(t, Matches(p, "NAVY.example"))
	assert.True(t, Matches(p, "  "))
	assert.False(t, Matches(p, "lovelace"))
}

func TestCombineAndFind(t *testing.T) {
	dir := writeFixtures(t, map[string]string{
		"bamboo.yaml":     bambooYAML,
		"gsuiteAdmin.yml": gsuiteYAML,
	})
	results, err := newFetcher(dir).FetchAll(context.Background())
	require.NoError(t, err)

	data, raw := Combine(results)
	assert.Len(t, data, 3)
	assert.True(t, raw.Bamboo.IsPresent())
	assert.True(t, raw.GSuiteAdmin.IsPresent())
	assert.False(t, raw.GoogleContacts.IsPresent())

	p, item, ok := results[2].Find("u1")
	require.True(t, ok)
	assert.Equal(t, "Alan Turing", p.DisplayName)
	rec, ok := item.GSuiteAdmin.Get()
	require.True(t, ok)
	assert.Equal(t, "u1", rec.ID)
	assert.False(t, item.Bamboo.IsPresent())

	_, _, ok = results[0].Find("missing")
	assert.False(t, ok)
}
