package cli

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// RootCommand builds the placer CLI's command tree.
func RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "placer",
		Short:        "placer anneals symmetry-constrained floorplans",
		Long:         "placer packs hard blocks with pairwise and self symmetry constraints into a compact, non-overlapping floorplan via simulated annealing.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newRunCmd())
	root.AddCommand(newCompareCmd())

	return root
}
