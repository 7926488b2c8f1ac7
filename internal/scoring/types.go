// Package scoring implements the habitability scoring engine: a closed,
// ordered registry of factor evaluators, three normalization strategies, and
// the orchestrator that turns a star/planet pair into an explained,
// reproducible assessment.
package scoring

import (
	"fmt"
	"strings"
)

// EngineVersion identifies the scoring algorithm, including every factor
// curve constant. Bump it whenever a curve, threshold, or strategy changes so
// stored assessments remain comparable.
const EngineVersion = "1.0.0"

// Disclaimer is attached verbatim to every assessment.
const Disclaimer = "This habitability score is a probabilistic indicator " +
	"derived from limited astrophysical parameters. It does NOT indicate the " +
	"detection of life or guarantee conditions suitable for life. Atmospheric " +
	"composition, surface conditions, magnetic field strength, and the " +
	"presence of water cannot be determined from current observational data; " +
	"the score estimates Earth-like conditions from measurable parameters only."

// Confidence tags how directly a factor's input was measured.
type Confidence string

const (
	ConfidenceHigh    Confidence = "high"     // direct measurement
	ConfidenceMedium  Confidence = "medium"   // derived from multiple measurements
	ConfidenceLow     Confidence = "low"      // model substitution / estimate
	ConfidenceVeryLow Confidence = "very_low" // defaulted due to missing data
)

// AboveVeryLow reports whether the confidence counts toward data
// completeness.
func (c Confidence) AboveVeryLow() bool { return c != ConfidenceVeryLow }

// Category groups factors for display.
type Category string

const (
	CategoryStellar   Category = "stellar"
	CategoryPlanetary Category = "planetary"
	CategoryOrbital   Category = "orbital"
	CategoryDerived   Category = "derived"
)

// FactorResult is the scored, explained outcome of one factor evaluation.
// Immutable once produced.
type FactorResult struct {
	ID           string     `json:"factor_id"`
	Name         string     `json:"factor_name"`
	Category     Category   `json:"category"`
	Score        float64    `json:"score"`  // in [0,1]
	Weight       float64    `json:"weight"` // resolved from configuration
	InputValue   string     `json:"input_value"`
	InputUnit    string     `json:"input_unit,omitempty"`
	OptimalRange string     `json:"optimal_range,omitempty"`
	Explanation  string     `json:"explanation"`
	Confidence   Confidence `json:"confidence"`
}

// ScoreCategory is the human-readable band for a total score.
type ScoreCategory string

const (
	CategoryVeryHigh ScoreCategory = "Very High"
	CategoryHigh     ScoreCategory = "High"
	CategoryModerate ScoreCategory = "Moderate"
	CategoryLow      ScoreCategory = "Low"
	CategoryVeryLow  ScoreCategory = "Very Low"
)

// CategoryForScore maps a total score to its band using fixed thresholds.
func CategoryForScore(score float64) ScoreCategory {
	switch {
	case score >= 0.8:
		return CategoryVeryHigh
	case score >= 0.6:
		return CategoryHigh
	case score >= 0.4:
		return CategoryModerate
	case score >= 0.2:
		return CategoryLow
	default:
		return CategoryVeryLow
	}
}

// Assessment is the complete output of one scoring call. Created once per
// request and never mutated afterwards; the caller owns it.
type Assessment struct {
	PlanetName       string         `json:"planet_name"`
	HostStarName     string         `json:"host_star_name,omitempty"`
	TotalScore       float64        `json:"total_score"`
	Category         ScoreCategory  `json:"score_category"`
	Factors          []FactorResult `json:"factors"` // stable registry order
	DataCompleteness float64        `json:"data_completeness"`
	Version          string         `json:"assessment_version"`
	Disclaimer       string         `json:"scientific_disclaimer"`
}

// ErrDegenerateWeights is returned when every applicable weight is zero at
// aggregation time; no default total score is invented in that case.
var ErrDegenerateWeights = fmt.Errorf("all factor weights are zero, total score is undefined")

// DuplicateFactorError reports an attempt to register a factor id twice.
type DuplicateFactorError struct {
	ID string
}

func (e *DuplicateFactorError) Error() string {
	return fmt.Sprintf("factor %q is already registered", e.ID)
}

// ConfigValidationError reports unknown factor keys or negative weights in a
// supplied configuration. Raised at load time, before any scoring occurs.
type ConfigValidationError struct {
	UnknownKeys     []string
	NegativeWeights []string
}

func (e *ConfigValidationError) Error() string {
	var parts []string
	if len(e.UnknownKeys) > 0 {
		parts = append(parts, fmt.Sprintf("unknown factor keys: %s", strings.Join(e.UnknownKeys, ", ")))
	}
	if len(e.NegativeWeights) > 0 {
		parts = append(parts, fmt.Sprintf("negative weights for: %s", strings.Join(e.NegativeWeights, ", ")))
	}
	if len(parts) == 0 {
		return "invalid scoring configuration"
	}
	return "invalid scoring configuration: " + strings.Join(parts, "; ")
}

// UnknownStrategyError reports an unrecognized normalization method name.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown normalization method %q (known: %s)",
		e.Name, strings.Join(StrategyNames(), ", "))
}
