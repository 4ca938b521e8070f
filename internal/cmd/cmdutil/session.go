package cmdutil

import (
	"context"

	"github.com/agentstation/peoplemap/internal/appcontext"
	"github.com/agentstation/peoplemap/internal/sources/local"
	"github.com/agentstation/peoplemap/pkg/constants"
	"github.com/agentstation/peoplemap/pkg/errors"
	"github.com/agentstation/peoplemap/pkg/logging"
	"github.com/agentstation/peoplemap/pkg/people"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// Session returns ctx carrying the app logger tagged with the command's
// operation and the store session.
func Session(ctx context.Context, app appcontext.Interface, operation string) context.Context {
	ctx = logging.WithLogger(ctx, app.Logger())
	ctx = logging.WithOperation(ctx, operation)
	return logging.WithSessionID(ctx, app.Store().SessionID())
}

// FetchContext bounds fixture reads by constants.FetchTimeout.
func FetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, constants.FetchTimeout)
}

// FetchAll reads ids through the app's fetcher within FetchContext.
func FetchAll(ctx context.Context, app appcontext.Interface, ids []sources.ID) ([]local.Result, error) {
	fctx, cancel := FetchContext(ctx)
	defer cancel()
	return app.Fetcher().FetchAll(fctx, ids...)
}

// Load fetches ids and drives the load lifecycle of each source through the
// store. It fails when the fetch is cut short or no source could be loaded.
func Load(ctx context.Context, app appcontext.Interface, ids []sources.ID) ([]local.Result, error) {
	store := app.Store()
	for _, id := range ids {
		store.Dispatch(logging.WithSource(ctx, id.String()), people.LoadStart{Source: id})
	}

	results, err := FetchAll(ctx, app, ids)
	if err != nil {
		for _, id := range ids {
			store.Dispatch(logging.WithSource(ctx, id.String()), people.LoadFail{Source: id, Err: err})
		}
		return nil, errors.WrapResource("load", "sources", app.Fetcher().Dir(), err)
	}

	var loaded int
	for _, r := range results {
		sctx := logging.WithSource(ctx, r.Source.String())
		if r.Err != nil {
			logging.FromContext(logging.WithError(sctx, r.Err)).Warn().Msg("Source failed to load")
			store.Dispatch(sctx, r.Fail())
			continue
		}
		for _, dropped := range r.Dropped {
			logging.FromContext(sctx).Debug().Err(dropped).Msg("Record not converted")
		}
		store.Dispatch(sctx, r.Success())
		loaded++
	}

	logging.FromContext(logging.WithFields(ctx, map[string]any{
		"loaded": loaded,
		"failed": len(ids) - loaded,
	})).Info().Msg("Sources loaded")

	if loaded == 0 && len(ids) > 0 {
		return results, errors.WrapResource("load", "sources", app.Fetcher().Dir(), errors.ErrNotFound)
	}
	return results, nil
}
