package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphgen/logging"
)

var (
	verbose bool
	logger  *logging.ZeroLogger
)

var rootCmd = &cobra.Command{
	Use:   "graphgen",
	Short: "Synthesize a scaled-up, statistically similar graph",
	Long: `graphgen reads a typed node list and colored edge list, then emits a
larger graph that preserves per-color type-pair mixing and degree
distributions via degree-corrected stochastic block model sampling.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(verbose)
		return nil
	},
}

// Execute runs the root command, exiting the process with a non-zero
// status on any configuration, I/O, or generation error (spec.md §6 exit
// status contract).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
}
