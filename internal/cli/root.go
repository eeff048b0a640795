package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stationrank/stationrank/pkg/buildinfo"
)

// Execute runs the stationrank CLI and returns an error if any command
// fails. This is the main entry point for the application.
//
// The function sets up the root command with the rank subcommand and
// configures logging based on the --verbose flag. The logger is attached
// to the context and accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "stationrank",
		Short:        "StationRank maps railway station importance",
		Long:         `StationRank builds a directed graph from a railway line list, joins it with station coordinates, ranks every station with PageRank, and renders the network on a map with labels for the most important stations.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRankCmd())

	return root.ExecuteContext(ctx)
}
