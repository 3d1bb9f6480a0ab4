package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/poisson/internal/config"
)

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios FILE",
		Short: "Run every scenario of a YAML file",
		Long: `Run every scenario of a YAML scenario file in order.

Scenarios inherit unset fields from the file's defaults block. The file's
logging level applies unless --log-level is given. POISSON_LOG_LEVEL,
POISSON_SEEDS and POISSON_PULL_BUDGET override the file.

Example file:
  defaults:
    seeds: 10
    algorithms: [all]
  scenarios:
    - name: periodic-3d
      dim: 3
      type: periodic
    - name: center-legal
      prefill: center
      expect: legal
  budgets:
    pulls: 500000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			level := f.Logging.Level
			if cmd.Flags().Changed("log-level") {
				level, _ = cmd.Flags().GetString("log-level")
			}
			return newSession(cmd, level, f.Budgets).runScenarios(f.Scenarios)
		},
	}
}
