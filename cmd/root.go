package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exohab/exohab/internal/catalog"
	"github.com/exohab/exohab/internal/config"
	"github.com/exohab/exohab/internal/output"
	"github.com/exohab/exohab/internal/outputters"
	"github.com/exohab/exohab/internal/scoring"
)

var (
	rootPath     string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	concurrency  int
)

var rootCmd = &cobra.Command{
	Use:   "exohab",
	Short: "Exohab - habitability scoring for exoplanet catalogs",
	Long: `Exohab scores exoplanets for potential habitability from catalog data.

By default, exohab scans the catalog root for *.system.yaml record files and
scores every planet in every system. Use 'exohab score' to score a single
record file, and 'exohab factors' to list the scoring factors.

Scores are comparative rankings from observable bulk properties, not
detections of life or habitable conditions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScoreCatalog()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Catalog root directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show per-factor detail")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().IntVarP(&concurrency, "concurrency", "c", 0, "Number of concurrent scoring workers (0 = configured default)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	configPaths := []string{".exohabrc.yaml", ".exohabrc.yml", ".exohabrc.json"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

// newEngine builds a scoring engine from the loaded configuration and the
// default factor registry.
func newEngine(cfg *config.Config) (*scoring.Engine, error) {
	return scoring.NewEngine(scoring.DefaultRegistry(), cfg.EngineConfig())
}

func runScoreCatalog() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return fmt.Errorf("error building scoring engine: %w", err)
	}

	cat, err := catalog.NewCatalog(cfg.Root)
	if err != nil {
		return err
	}
	systems, err := cat.LoadAll()
	if err != nil {
		return err
	}

	report, err := scoreSystems(engine, systems, workerCount(cfg))
	if err != nil {
		return err
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	return nil
}

// workerCount resolves the scoring concurrency: the flag wins over the
// configured value when set.
func workerCount(cfg *config.Config) int {
	if concurrency > 0 {
		return concurrency
	}
	return cfg.Concurrency
}

// scoreJob is one planet to score, with its slot in the report.
type scoreJob struct {
	index  int
	file   string
	system catalog.System
	planet int
}

// scoreSystems scores every planet of every system through a bounded worker
// pool. The engine is safe for concurrent use; results land in their
// pre-assigned slots so the report order matches discovery order regardless
// of scheduling.
func scoreSystems(engine *scoring.Engine, systems []catalog.System, workers int) (*output.Report, error) {
	var jobs []scoreJob
	for _, system := range systems {
		for p := range system.Planets {
			jobs = append(jobs, scoreJob{
				index:  len(jobs),
				file:   system.Path,
				system: system,
				planet: p,
			})
		}
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]output.Result, len(jobs))
	errs := make([]error, len(jobs))

	jobCh := make(chan scoreJob)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				assessment, err := engine.Score(job.system.Star, job.system.Planets[job.planet])
				if err != nil {
					errs[job.index] = err
					continue
				}
				results[job.index] = output.Result{File: job.file, Assessment: assessment}
			}
		}()
	}
	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &output.Report{Results: results}, nil
}
