package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jaxan-go/graphkey/internal/obs"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "graphkey",
	Short: "Canonical graph labeling via individualization-refinement",
	Long: `graphkey computes a canonical label (a GraphKey) for an undirected graph
via individualization-refinement, so that two graphs are isomorphic if
and only if their keys are equal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := obs.LevelInfo
		if verbose {
			level = obs.LevelDebug
		}
		obs.SetGlobal(obs.NewDefaultLogger(level, os.Stderr))
	},
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Logger returns the CLI's configured logger, usable by subcommands.
func Logger() obs.Logger { return obs.Global() }
