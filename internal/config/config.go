// Package config loads the exohab configuration: the scoring weight mapping
// and normalization method consumed by the engine, plus the ambient CLI
// options (catalog root, output format, concurrency). Sources are merged in
// viper's usual order: defaults, then an .exohabrc file, then EXOHAB_*
// environment variables, then flags bound by the command layer.
//
// Configuration errors are fatal to the load. The scoring portion is
// validated against the factor registry before an engine can be built, so a
// bad weight file can never produce a partially configured engine.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/exohab/exohab/internal/schema"
	"github.com/exohab/exohab/internal/scoring"
)

// Config represents the exohab configuration.
type Config struct {
	Root        string `mapstructure:"root"`
	Format      string `mapstructure:"format"`
	Output      string `mapstructure:"output"`
	Quiet       bool   `mapstructure:"quiet"`
	Verbose     bool   `mapstructure:"verbose"`
	Concurrency int    `mapstructure:"concurrency"`

	Scoring ScoringConfig `mapstructure:"scoring"`
}

// ScoringConfig is the on-disk shape of the engine configuration.
type ScoringConfig struct {
	Weights             map[string]float64 `mapstructure:"weights"`
	NormalizationMethod string             `mapstructure:"normalizationMethod"`
}

// EngineConfig converts the loaded scoring section into the immutable value
// the engine consumes.
func (c *Config) EngineConfig() scoring.Config {
	return scoring.Config{
		Weights:       c.Scoring.Weights,
		Normalization: c.Scoring.NormalizationMethod,
	}
}

// LoadConfig loads configuration from defaults, config file, and environment.
// rootPath, when non-empty, overrides the configured catalog root.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("concurrency", 4)
	viper.SetDefault("scoring.normalizationMethod", scoring.StrategyWeightedAverage)

	var configFile string
	configPaths := []string{".exohabrc.yaml", ".exohabrc.yml", ".exohabrc.json"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			configFile = path
			break
		}
	}

	if configFile != "" {
		if err := validateScoringSection(configFile); err != nil {
			return nil, err
		}
	}

	viper.SetEnvPrefix("EXOHAB")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateScoringSection checks the scoring section of a config file against
// the embedded weights schema before viper unmarshals it. This catches shape
// problems (a non-numeric weight, a mistyped normalization method) with a
// file-level message, the same way catalog records are checked before mapping.
// Registry-aware validation of the weight keys happens later, when the engine
// is built.
func validateScoringSection(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	// yaml.v3 parses JSON documents too, so one decode covers all extensions.
	var data map[string]any
	if err := yamlv3.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("invalid config file %s: %v", path, err)
	}

	section, ok := data["scoring"].(map[string]any)
	if !ok {
		return nil // no scoring section to check
	}

	validator := schema.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return fmt.Errorf("error loading config schemas: %w", err)
	}

	validationErrs, err := validator.ValidateWeights(section)
	if err != nil {
		return err
	}
	if len(validationErrs) > 0 {
		problems := make([]string, len(validationErrs))
		for i, ve := range validationErrs {
			problems[i] = ve.Message
		}
		return fmt.Errorf("invalid scoring configuration in %s: %s", path, strings.Join(problems, "; "))
	}
	return nil
}

// validateConfig validates the ambient options. The scoring section is
// validated separately against the factor registry when the engine is built.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	return nil
}
