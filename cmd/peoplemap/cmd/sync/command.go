// Package sync implements the sync command, which loads every configured
// source into the people store.
package sync

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/peoplemap/internal/appcontext"
	"github.com/agentstation/peoplemap/internal/cmd/cmdutil"
	"github.com/agentstation/peoplemap/internal/cmd/output"
	"github.com/agentstation/peoplemap/pkg/people"
)

// Report is the structured output of a sync.
type Report struct {
	Sources []SourceReport      `json:"sources" yaml:"sources"`
	People  []people.PersonInfo `json:"people,omitempty" yaml:"people,omitempty"`
}

// SourceReport summarizes one source of a sync.
type SourceReport struct {
	Source  string `json:"source" yaml:"source"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
	People  int    `json:"people" yaml:"people"`
	Raw     int    `json:"raw" yaml:"raw"`
	Dropped int    `json:"dropped" yaml:"dropped"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewCommand creates the sync command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var showPeople bool
	var flags *cmdutil.SourceFlags

	cmd := &cobra.Command{
		Use:     "sync",
		GroupID: "core",
		Short:   "Load people from every source",
		Long: `Sync reads one fixture file per source from the fixtures directory,
converts the records and merges them into the people store.

A source whose file is missing or malformed is marked as failed; the
others still load.`,
		Example: `  peoplemap sync
  peoplemap sync --source bamboo --source gsuiteAdmin
  peoplemap sync --people --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := flags.IDs()
			if err != nil {
				return err
			}

			ctx := cmdutil.Session(cmd.Context(), app, "sync")
			results, err := cmdutil.Load(ctx, app, ids)
			if err != nil {
				return err
			}

			snap := app.Store().Snapshot()
			report := Report{}
			for _, r := range results {
				sr := SourceReport{
					Source:  r.Source.String(),
					File:    r.File,
					People:  len(r.Data),
					Raw:     snap.Raw.Len(r.Source),
					Dropped: len(r.Dropped),
				}
				if r.Err != nil {
					sr.Error = r.Err.Error()
				}
				report.Sources = append(report.Sources, sr)
			}
			if showPeople {
				report.People = flags.Apply(snap.People())
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, report, func() output.Data {
				if showPeople {
					return output.PeopleTable(snap, report.People, flags.Wide)
				}
				return output.SourcesTable(snap)
			})
		},
	}

	flags = cmdutil.AddSourceFlags(cmd)
	cmd.Flags().BoolVar(&showPeople, "people", false, "List the merged people instead of the source summary")

	return cmd
}
