package scoring

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/exohab/exohab/internal/entities"
)

// k5vStar is a K5 dwarf with enough data to place its habitable zone.
func k5vStar() entities.Star {
	return entities.Star{
		Name:            "Test K5V",
		SpectralType:    "K5V",
		TemperatureK:    entities.Float(4410),
		LuminositySolar: entities.Float(0.15),
		AgeGyr:          entities.Float(5.0),
	}
}

// k5vPlanet orbits inside the conservative habitable zone of k5vStar.
func k5vPlanet() entities.Planet {
	return entities.Planet{
		Name:            "Test K5V b",
		HostStarName:    "Test K5V",
		SemiMajorAxisAU: entities.Float(0.409),
		RadiusEarth:     entities.Float(1.3),
		DensityGCm3:     entities.Float(5.0),
		Eccentricity:    entities.Float(0.04),
	}
}

func newDefaultEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultRegistry(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

// TestScoreHabitableCandidate tests the end-to-end scenario of a promising
// planet around a K dwarf
func TestScoreHabitableCandidate(t *testing.T) {
	engine := newDefaultEngine(t)

	assessment, err := engine.Score(k5vStar(), k5vPlanet())
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if assessment.PlanetName != "Test K5V b" {
		t.Errorf("PlanetName = %q", assessment.PlanetName)
	}
	if len(assessment.Factors) != 13 {
		t.Fatalf("got %d factors, want 13", len(assessment.Factors))
	}

	byID := make(map[string]FactorResult)
	for _, f := range assessment.Factors {
		byID[f.ID] = f
		if f.Score < 0 || f.Score > 1 {
			t.Errorf("factor %s score %v outside [0,1]", f.ID, f.Score)
		}
		if f.Explanation == "" {
			t.Errorf("factor %s has no explanation", f.ID)
		}
	}

	for _, id := range []string{"stellar_type", "habitable_zone_position"} {
		f := byID[id]
		if f.Score < 0.8 {
			t.Errorf("%s score = %v, want >= 0.8", id, f.Score)
		}
		if f.Confidence != ConfidenceHigh {
			t.Errorf("%s confidence = %q, want high", id, f.Confidence)
		}
	}

	if hz := byID["habitable_zone_position"]; hz.Score != 1.0 {
		t.Errorf("habitable_zone_position score = %v, want 1.0 (conservative zone)", hz.Score)
	}

	// Mass, equilibrium temperature and surface gravity are absent in this
	// fixture, so three factors default.
	wantCompleteness := 10.0 / 13.0
	if assessment.DataCompleteness != wantCompleteness {
		t.Errorf("DataCompleteness = %v, want %v", assessment.DataCompleteness, wantCompleteness)
	}

	if assessment.Category != CategoryVeryHigh && assessment.Category != CategoryHigh {
		t.Errorf("Category = %q, want Very High or High (total %v)", assessment.Category, assessment.TotalScore)
	}

	if assessment.Version != EngineVersion {
		t.Errorf("Version = %q, want %q", assessment.Version, EngineVersion)
	}
	if assessment.Disclaimer == "" {
		t.Error("Disclaimer is empty")
	}
}

// TestScoreAllFieldsAbsent tests the end-to-end scenario of a record carrying
// nothing but a planet name
func TestScoreAllFieldsAbsent(t *testing.T) {
	engine := newDefaultEngine(t)

	assessment, err := engine.Score(entities.Star{}, entities.Planet{Name: "Bare b"})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	for _, f := range assessment.Factors {
		if f.Confidence != ConfidenceVeryLow {
			t.Errorf("factor %s confidence = %q, want very_low", f.ID, f.Confidence)
		}
		if f.Score != 0.5 {
			t.Errorf("factor %s score = %v, want the 0.5 default", f.ID, f.Score)
		}
	}

	if assessment.DataCompleteness != 0.0 {
		t.Errorf("DataCompleteness = %v, want 0.0", assessment.DataCompleteness)
	}
	if assessment.TotalScore != 0.5 {
		t.Errorf("TotalScore = %v, want 0.5", assessment.TotalScore)
	}
	if assessment.Category != CategoryModerate {
		t.Errorf("Category = %q, want Moderate", assessment.Category)
	}
}

// TestScoreDeterminism tests that identical inputs produce bit-for-bit
// identical assessments
func TestScoreDeterminism(t *testing.T) {
	engine := newDefaultEngine(t)

	first, err := engine.Score(k5vStar(), k5vPlanet())
	if err != nil {
		t.Fatalf("first Score failed: %v", err)
	}
	second, err := engine.Score(k5vStar(), k5vPlanet())
	if err != nil {
		t.Fatalf("second Score failed: %v", err)
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(firstJSON) != string(secondJSON) {
		t.Error("re-scoring identical inputs produced a different assessment")
	}
}

// TestScoreWeightsApplied tests that configured weights reach the results and
// the aggregation
func TestScoreWeightsApplied(t *testing.T) {
	config := Config{
		Weights:       map[string]float64{"stellar_type": 3.0},
		Normalization: StrategyWeightedAverage,
	}
	engine, err := NewEngine(DefaultRegistry(), config)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	assessment, err := engine.Score(k5vStar(), k5vPlanet())
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	for _, f := range assessment.Factors {
		want := 1.0
		if f.ID == "stellar_type" {
			want = 3.0
		}
		if f.Weight != want {
			t.Errorf("factor %s weight = %v, want %v", f.ID, f.Weight, want)
		}
	}
}

// TestScoreDegenerateWeights tests that an all-zero weighting fails scoring
func TestScoreDegenerateWeights(t *testing.T) {
	registry := DefaultRegistry()
	weights := make(map[string]float64)
	for _, id := range registry.IDs() {
		weights[id] = 0
	}

	engine, err := NewEngine(registry, Config{
		Weights:       weights,
		Normalization: StrategyWeightedAverage,
	})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	_, err = engine.Score(k5vStar(), k5vPlanet())
	if !errors.Is(err, ErrDegenerateWeights) {
		t.Errorf("got err %v, want ErrDegenerateWeights", err)
	}
}

// TestNewEngineRejectsBadConfig tests that configuration errors are fatal at
// construction
func TestNewEngineRejectsBadConfig(t *testing.T) {
	_, err := NewEngine(DefaultRegistry(), Config{
		Weights:       map[string]float64{"not_a_factor": 1.0},
		Normalization: StrategyWeightedAverage,
	})
	var configErr *ConfigValidationError
	if !errors.As(err, &configErr) {
		t.Fatalf("got err %v, want ConfigValidationError", err)
	}

	_, err = NewEngine(DefaultRegistry(), Config{Normalization: "mode"})
	var strategyErr *UnknownStrategyError
	if !errors.As(err, &strategyErr) {
		t.Fatalf("got err %v, want UnknownStrategyError", err)
	}
}

// TestCategoryForScore tests the literal banding thresholds
func TestCategoryForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  ScoreCategory
	}{
		{0.95, CategoryVeryHigh},
		{0.8, CategoryVeryHigh},
		{0.79999, CategoryHigh},
		{0.6, CategoryHigh},
		{0.59999, CategoryModerate},
		{0.4, CategoryModerate},
		{0.39999, CategoryLow},
		{0.2, CategoryLow},
		{0.19999, CategoryVeryLow},
		{0.0, CategoryVeryLow},
	}

	for _, tt := range tests {
		if got := CategoryForScore(tt.score); got != tt.want {
			t.Errorf("CategoryForScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
