package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exohab/exohab/internal/catalog"
	"github.com/exohab/exohab/internal/config"
	"github.com/exohab/exohab/internal/output"
	"github.com/exohab/exohab/internal/outputters"
)

var scoreCmd = &cobra.Command{
	Use:   "score <record-file>",
	Short: "Score a single system record file",
	Long: `The score command validates and scores one *.system.yaml record file.

Every planet in the record is scored against its host star. Missing physical
quantities never fail the run; the affected factors report a neutral score at
very_low confidence and the assessment's data completeness reflects them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScoreFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScoreFile(path string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return fmt.Errorf("error building scoring engine: %w", err)
	}

	system, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	report := &output.Report{}
	for _, planet := range system.Planets {
		assessment, err := engine.Score(system.Star, planet)
		if err != nil {
			return err
		}
		report.Results = append(report.Results, output.Result{
			File:       system.Path,
			Assessment: assessment,
		})
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	return nil
}
