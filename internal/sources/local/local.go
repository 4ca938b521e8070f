// Package local loads per-source raw directory batches from fixture files on
// disk and converts them into canonical people.
package local

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agentstation/peoplemap/pkg/constants"
	"github.com/agentstation/peoplemap/pkg/convert"
	"github.com/agentstation/peoplemap/pkg/errors"
	"github.com/agentstation/peoplemap/pkg/logging"
	"github.com/agentstation/peoplemap/pkg/people"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// Fetcher reads one fixture file per source from a directory.
// Files are named after the source id: bamboo.yaml, google.json, ...
type Fetcher struct {
	dir    string
	limit  int
	logger *zerolog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithDir sets the fixture directory.
func WithDir(dir string) Option {
	return func(f *Fetcher) {
		f.dir = dir
	}
}

// WithConcurrency caps the number of sources read at once.
func WithConcurrency(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.limit = n
		}
	}
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(logger *zerolog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// New creates a fetcher reading from constants.DefaultFixturesDir.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		dir:   constants.DefaultFixturesDir,
		limit: constants.MaxConcurrentSources,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Dir returns the fixture directory.
func (f *Fetcher) Dir() string {
	return f.dir
}

// Result is the outcome of loading one source.
type Result struct {
	Source sources.ID
	File   string

	// Data holds the converted people; Raw the records as read.
	Data []people.PersonInfo
	Raw  people.RawBatch

	// Dropped lists records that could not be converted.
	Dropped []error

	// Err is set when the source could not be loaded at all.
	Err error
}

// Success builds the action delivering r to a store.
func (r Result) Success() people.LoadSuccess {
	return people.LoadSuccess{Source: r.Source, Data: r.Data, Raw: r.Raw}
}

// Fail builds the action reporting r's error to a store.
func (r Result) Fail() people.LoadFail {
	return people.LoadFail{Source: r.Source, Err: r.Err}
}

type bambooFile struct {
	Employees []sources.BambooEmployee `json:"employees" yaml:"employees"`
}

type googleFile struct {
	Feed struct {
		Entry []sources.GoogleContactsEntry `json:"entry" yaml:"entry"`
	} `json:"feed" yaml:"feed"`
}

type gsuiteFile struct {
	Users []sources.GSuiteAdminUser `json:"users" yaml:"users"`
}

// Fetch loads a single source. Failures are reported in Result.Err.
func (f *Fetcher) Fetch(ctx context.Context, id sources.ID) Result {
	res := Result{Source: id}
	ctx = logging.WithSource(logging.WithLogger(ctx, f.loggerFor(ctx)), id.String())
	logger := logging.FromContext(ctx)

	if !id.IsValid() {
		res.Err = errors.NewSourceError(id.String(), errors.ErrUnknownSource)
		return res
	}
	if err := ctx.Err(); err != nil {
		res.Err = errors.NewSourceError(id.String(), err)
		return res
	}

	path, err := f.locate(id)
	if err != nil {
		res.Err = errors.NewSourceError(id.String(), err)
		return res
	}
	res.File = path

	data, err := readFixture(path)
	if err != nil {
		res.Err = errors.NewSourceError(id.String(), err)
		return res
	}

	switch id {
	case sources.Bamboo:
		var file bambooFile
		err = decode(path, data, &file)
		res.Raw.Bamboo = sources.Some(file.Employees)
		res.Data, res.Dropped = convert.FromBambooBatch(file.Employees)
	case sources.GoogleContacts:
		var file googleFile
		err = decode(path, data, &file)
		res.Raw.GoogleContacts = sources.Some(file.Feed.Entry)
		res.Data, res.Dropped = convert.FromGoogleContactBatch(file.Feed.Entry)
	case sources.GSuiteAdmin:
		var file gsuiteFile
		err = decode(path, data, &file)
		res.Raw.GSuiteAdmin = sources.Some(file.Users)
		res.Data, res.Dropped = convert.FromGSuiteUserBatch(file.Users)
	}
	if err != nil {
		return Result{Source: id, File: path, Err: errors.NewSourceError(id.String(), err)}
	}

	logger.Debug().
		Str("file", path).
		Int("people", len(res.Data)).
		Int("dropped", len(res.Dropped)).
		Msg("Loaded fixture")
	return res
}

// FetchAll loads every id concurrently. Results follow the order of ids; one
// source failing does not stop the others. The returned error is non-nil only
// when ctx ends first.
func (f *Fetcher) FetchAll(ctx context.Context, ids ...sources.ID) ([]Result, error) {
	if len(ids) == 0 {
		ids = sources.IDs()
	}
	results := make([]Result, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.limit)
	for i, id := range ids {
		g.Go(func() error {
			results[i] = f.Fetch(gctx, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

func (f *Fetcher) locate(id sources.ID) (string, error) {
	for _, ext := range constants.FixtureExtensions {
		path := filepath.Join(f.dir, id.String()+ext)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", errors.WrapIO("stat", path, err)
		}
	}
	return "", errors.NewNotFoundError("fixture", filepath.Join(f.dir, id.String()))
}

func readFixture(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}
	if info.Size() > constants.MaxFixtureBytes {
		return nil, errors.NewValidationError("file", path, "fixture exceeds size limit")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return data, nil
}

func decode(path string, data []byte, v any) error {
	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(data, v); err != nil {
			return errors.WrapParse("json", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.WrapParse("yaml", path, err)
	}
	return nil
}

func (f *Fetcher) loggerFor(ctx context.Context) *zerolog.Logger {
	logger := logging.FromContext(ctx)
	if logger == logging.Default() && f.logger != nil {
		return f.logger
	}
	return logger
}
