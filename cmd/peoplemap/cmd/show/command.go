// Package show implements the show command.
package show

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/peoplemap/internal/appcontext"
	"github.com/agentstation/peoplemap/internal/cmd/cmdutil"
	"github.com/agentstation/peoplemap/internal/cmd/output"
	"github.com/agentstation/peoplemap/pkg/errors"
	"github.com/agentstation/peoplemap/pkg/logging"
	"github.com/agentstation/peoplemap/pkg/people"
)

// Details is the structured output of show: the canonical person and the
// raw records stored for it.
type Details struct {
	Person people.PersonInfo `json:"person" yaml:"person"`
	Raw    any               `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// NewCommand creates the show command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "show <source>:<id>",
		GroupID: "core",
		Short:   "Show one person",
		Long: `Show loads a single person by canonical key, for example bamboo:42 or
google:XYZ123, and prints the canonical record. JSON and YAML output
include the raw source record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := people.ParseKey(args[0])
			if err != nil {
				return err
			}

			ctx := logging.WithPerson(cmdutil.Session(cmd.Context(), app, "show"), ref.Key())
			fctx, cancel := cmdutil.FetchContext(ctx)
			defer cancel()
			res := app.Fetcher().Fetch(fctx, ref.Source)
			if res.Err != nil {
				return res.Err
			}
			p, item, ok := res.Find(ref.ID)
			if !ok {
				return errors.NewNotFoundError("person", ref.Key())
			}

			store := app.Store()
			store.Dispatch(ctx, people.ByIDSuccess{Data: p, Raw: item})
			snap := store.Snapshot()
			stored, _ := snap.Person(ref)

			details := Details{Person: stored}
			switch {
			case item.Bamboo.IsPresent():
				details.Raw, _ = snap.Raw.Bamboo.Get(ref.ID)
			case item.GoogleContacts.IsPresent():
				details.Raw, _ = snap.Raw.GoogleContacts.Get(ref.ID)
			case item.GSuiteAdmin.IsPresent():
				details.Raw, _ = snap.Raw.GSuiteAdmin.Get(ref.ID)
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, details, func() output.Data {
				return output.PersonTable(snap, stored)
			})
		},
	}
}
