package scoring

import (
	"fmt"

	"github.com/exohab/exohab/internal/entities"
)

// Factor is the capability interface implemented by every scoring dimension.
// Evaluate must be pure and deterministic: same entities, same result. It
// must never fail — when required measurements are absent the factor returns
// a documented default at very_low confidence instead.
//
// Factors read only the shared entities (derived factors may read derived
// physical quantities), never other factors' scores, so evaluations are safe
// to run in any order or in parallel.
type Factor interface {
	// ID returns the stable factor identifier used in configuration keys
	// and output.
	ID() string

	// Name returns the human-readable display name.
	Name() string

	// Category returns the grouping label for display.
	Category() Category

	// Evaluate scores the factor against the entities.
	Evaluate(star entities.Star, planet entities.Planet) FactorResult
}

// missingData builds the defaulted result a factor returns when a required
// measurement is absent. The neutral 0.5 score keeps unknown systems in the
// middle of the range instead of punishing sparse catalogs.
func missingData(f Factor, field, unit, optimal string) FactorResult {
	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        0.5,
		InputValue:   "unknown",
		InputUnit:    unit,
		OptimalRange: optimal,
		Explanation:  fmt.Sprintf("Required measurement %q is not available; assigned the neutral default score.", field),
		Confidence:   ConfidenceVeryLow,
	}
}

// clamp saturates a score into [0,1]. Every curve goes through it so no
// factor can emit an unbounded value.
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
