package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exohab/exohab/internal/config"
)

var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "List the registered scoring factors",
	Long: `The factors command lists every registered scoring factor in evaluation
order, with its category and configured weight.

Factor ids are the keys accepted in the scoring.weights configuration map.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListFactors()
	},
}

func init() {
	rootCmd.AddCommand(factorsCmd)
}

func runListFactors() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return fmt.Errorf("error building scoring engine: %w", err)
	}

	engineConfig := engine.Config()
	for _, factor := range engine.Registry().All() {
		fmt.Printf("%-26s %-10s %4.1f  %s\n",
			factor.ID(), factor.Category(), engineConfig.WeightFor(factor.ID()), factor.Name())
	}
	fmt.Printf("\nnormalization: %s\n", engineConfig.Normalization)

	return nil
}
