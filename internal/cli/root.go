// Package cli wires the devsync commands: the terminal UI plus list, seed
// and screens for scripting.
package cli

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile   string
	dbPath       string
	logLevel     string
	fixturesOnly bool
}

func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "devsync",
		Short:         "Browse a chat workspace from the terminal",
		Long:          "devsync shows direct messages, channels, activity, assigned tasks, canvases and external connections with per-screen filters, sorting and search.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts, "")
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/devsync/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite catalog database path")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&opts.fixturesOnly, "fixtures-only", false, "ignore the database and use the built-in demo workspace")

	cmd.AddCommand(
		newTUICmd(opts),
		newListCmd(opts),
		newSeedCmd(opts),
		newScreensCmd(opts),
	)

	return cmd
}
