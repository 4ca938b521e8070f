// Package search implements the search command.
package search

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/peoplemap/internal/appcontext"
	"github.com/agentstation/peoplemap/internal/cmd/cmdutil"
	"github.com/agentstation/peoplemap/internal/cmd/output"
	"github.com/agentstation/peoplemap/internal/sources/local"
	"github.com/agentstation/peoplemap/pkg/logging"
	"github.com/agentstation/peoplemap/pkg/people"
)

// NewCommand creates the search command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var flags *cmdutil.SourceFlags

	cmd := &cobra.Command{
		Use:     "search <query>",
		GroupID: "core",
		Short:   "Search people across sources",
		Long: `Search matches the query against names, emails, titles and departments
of every source and merges the matches into the people store.`,
		Example: `  peoplemap search lovelace
  peoplemap search "hut 8" --source gsuiteAdmin --wide`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := flags.IDs()
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")

			ctx := logging.WithField(cmdutil.Session(cmd.Context(), app, "search"), "query", query)
			store := app.Store()
			store.Dispatch(ctx, people.SearchStart{Query: query})

			results, err := cmdutil.FetchAll(ctx, app, ids)
			if err != nil {
				store.Dispatch(ctx, people.SearchStop{Query: query})
				return err
			}

			filtered := make([]local.Result, 0, len(results))
			for _, r := range results {
				if r.Err != nil {
					sctx := logging.WithError(logging.WithSource(ctx, r.Source.String()), r.Err)
					logging.FromContext(sctx).Warn().Msg("Source skipped")
					continue
				}
				filtered = append(filtered, r.Filter(query))
			}

			data, raw := local.Combine(filtered)
			store.Dispatch(ctx, people.SearchComplete{Query: query, Data: data, Raw: raw})

			snap := store.Snapshot()
			matches := make([]people.PersonInfo, 0, len(data))
			for _, p := range data {
				if stored, ok := snap.Person(p.Ref()); ok {
					matches = append(matches, stored)
				}
			}
			matches = flags.Apply(matches)

			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, matches, func() output.Data {
				return output.PeopleTable(snap, matches, flags.Wide)
			})
		},
	}

	flags = cmdutil.AddSourceFlags(cmd)
	return cmd
}
