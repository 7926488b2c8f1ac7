package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exohab/exohab/internal/scoring"
)

var methodologyCmd = &cobra.Command{
	Use:   "methodology",
	Short: "Explain how scores are computed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMethodology()
	},
}

func init() {
	rootCmd.AddCommand(methodologyCmd)
}

func runMethodology() error {
	fmt.Printf("exohab scoring engine %s\n\n", scoring.EngineVersion)
	fmt.Println("Each registered factor maps one observable property of a planet or its")
	fmt.Println("host star to a score in [0,1], with an explanation and a confidence")
	fmt.Println("level. Factors with missing input data score 0.5 at very_low confidence")
	fmt.Println("so absent measurements neither reward nor punish a planet.")
	fmt.Println()
	fmt.Println("Factor scores are combined by a configurable normalization method:")
	fmt.Println()
	fmt.Println("  weighted_average  balanced default; weights set relative importance")
	fmt.Println("  geometric_mean    punishes low scores; one bad factor drags the total")
	fmt.Println("  minimum           most conservative; the weakest factor sets the total")
	fmt.Println()
	fmt.Printf("Available methods: %s\n", strings.Join(scoring.StrategyNames(), ", "))
	fmt.Println()
	fmt.Println("Score categories: >=0.8 Very High, >=0.6 High, >=0.4 Moderate,")
	fmt.Println(">=0.2 Low, otherwise Very Low.")
	fmt.Println()
	fmt.Println(scoring.Disclaimer)

	return nil
}
