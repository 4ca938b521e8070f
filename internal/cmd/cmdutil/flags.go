// Package cmdutil provides shared flags and store plumbing for peoplemap commands.
package cmdutil

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/agentstation/peoplemap/pkg/errors"
	"github.com/agentstation/peoplemap/pkg/people"
	"github.com/agentstation/peoplemap/pkg/sources"
)

// SourceFlags holds flags selecting which sources a command reads.
type SourceFlags struct {
	Sources []string
	Limit   int
	Wide    bool
}

// AddSourceFlags adds source selection flags to a command.
func AddSourceFlags(cmd *cobra.Command) *SourceFlags {
	flags := &SourceFlags{}

	cmd.Flags().StringSliceVarP(&flags.Sources, "source", "s", nil,
		"Sources to read: bamboo, google, gsuiteAdmin (default all)")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of people shown")
	cmd.Flags().BoolVar(&flags.Wide, "wide", false,
		"Show phones, department and location")

	return flags
}

// IDs validates the selected sources in flag order, dropping repeats. No
// selection means every source.
func (f *SourceFlags) IDs() ([]sources.ID, error) {
	if len(f.Sources) == 0 {
		return sources.IDs(), nil
	}
	ids := make([]sources.ID, 0, len(f.Sources))
	for _, s := range f.Sources {
		id, err := sources.Parse(s)
		if err != nil {
			return nil, errors.WrapValidation("--source", err)
		}
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Apply truncates ps to the configured limit.
func (f *SourceFlags) Apply(ps []people.PersonInfo) []people.PersonInfo {
	if f.Limit > 0 && len(ps) > f.Limit {
		return ps[:f.Limit]
	}
	return ps
}
