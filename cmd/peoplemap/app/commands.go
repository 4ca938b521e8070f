package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/peoplemap/cmd/peoplemap/cmd/search"
	"github.com/agentstation/peoplemap/cmd/peoplemap/cmd/show"
	"github.com/agentstation/peoplemap/cmd/peoplemap/cmd/sync"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(sync.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("peoplemap %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.Commit())
				cmd.Printf("  built:    %s\n", a.Date())
				cmd.Printf("  built by: %s\n", a.BuiltBy())
			}
		},
	}
}
