// Command poissoncheck runs the Poisson-disk validity harness against the
// bundled generator families and reports every violation it finds.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var (
	version = "0.1.0-dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "poissoncheck",
		Short: "Validate incremental Poisson-disk generators",
		Long: `poissoncheck drives Poisson-disk generators through seeded runs and
checks every emitted point set for minimum separation, domain containment,
size-hint soundness and prefill oracle answers.

Examples:
  poissoncheck run --algo all --dim 3 --samples 200 --type periodic
  poissoncheck run --prefill near-last --expect illegal
  poissoncheck scenarios scenarios.yaml --metrics`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: error, warn, info, debug, trace")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print Prometheus metrics after the run")

	rootCmd.AddCommand(
		newRunCmd(),
		newScenariosCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
