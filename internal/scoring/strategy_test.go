package scoring

import (
	"errors"
	"math"
	"testing"
)

// TestWeightedAverage tests the weighted average against hand-computed fixtures
func TestWeightedAverage(t *testing.T) {
	tests := []struct {
		name    string
		scores  []float64
		weights []float64
		want    float64
	}{
		{
			name:    "uniform weights",
			scores:  []float64{0.2, 0.4, 0.6},
			weights: []float64{1, 1, 1},
			want:    0.4,
		},
		{
			name:    "single factor",
			scores:  []float64{0.73},
			weights: []float64{2.5},
			want:    0.73,
		},
		{
			name:    "weight dominates",
			scores:  []float64{1.0, 0.0},
			weights: []float64{3, 1},
			want:    0.75,
		},
		{
			name:    "zero weight excluded from numerator and denominator",
			scores:  []float64{0.9, 0.1},
			weights: []float64{1, 0},
			want:    0.9,
		},
		{
			name:    "hand-computed mixed weights",
			scores:  []float64{0.5, 0.8, 0.2},
			weights: []float64{2, 1, 1},
			// (0.5*2 + 0.8 + 0.2) / 4 = 2.0 / 4
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeightedAverage(tt.scores, tt.weights)
			if err != nil {
				t.Fatalf("WeightedAverage failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("WeightedAverage = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestStrategyIdempotence tests that uniform scores pass through every strategy
func TestStrategyIdempotence(t *testing.T) {
	values := []float64{0.0, 0.25, 0.5, 0.93, 1.0}
	weights := []float64{1, 2, 0.5, 1}

	for _, name := range StrategyNames() {
		strategy, err := StrategyByName(name)
		if err != nil {
			t.Fatalf("StrategyByName(%q) failed: %v", name, err)
		}
		for _, v := range values {
			// geometric_mean floors at epsilon, so exact zero is excluded there
			if name == StrategyGeometricMean && v == 0 {
				continue
			}
			scores := []float64{v, v, v, v}
			got, err := strategy(scores, weights)
			if err != nil {
				t.Fatalf("%s(%v) failed: %v", name, v, err)
			}
			if math.Abs(got-v) > 1e-9 {
				t.Errorf("%s with uniform scores %v = %v, want %v", name, v, got, v)
			}
		}
	}
}

// TestGeometricMeanPunishesLowScores tests the defining property of the
// geometric mean
func TestGeometricMeanPunishesLowScores(t *testing.T) {
	scores := []float64{0.9, 0.9, 0.05}
	weights := []float64{1, 1, 1}

	avg, err := WeightedAverage(scores, weights)
	if err != nil {
		t.Fatalf("WeightedAverage failed: %v", err)
	}
	geo, err := GeometricMean(scores, weights)
	if err != nil {
		t.Fatalf("GeometricMean failed: %v", err)
	}

	if geo >= avg {
		t.Errorf("GeometricMean = %v should be below WeightedAverage = %v for a mixed set", geo, avg)
	}
}

// TestGeometricMeanZeroScore tests the epsilon floor
func TestGeometricMeanZeroScore(t *testing.T) {
	got, err := GeometricMean([]float64{0.0, 1.0}, []float64{1, 1})
	if err != nil {
		t.Fatalf("GeometricMean failed: %v", err)
	}
	if got <= 0 {
		t.Errorf("GeometricMean with a zero score = %v, want a small positive value", got)
	}
	if got > 0.01 {
		t.Errorf("GeometricMean with a zero score = %v, expected it dragged near zero", got)
	}
}

// TestMinimum tests the minimum strategy's weight-as-inclusion-filter semantics
func TestMinimum(t *testing.T) {
	tests := []struct {
		name    string
		scores  []float64
		weights []float64
		want    float64
	}{
		{
			name:    "weakest factor wins",
			scores:  []float64{0.9, 0.3, 0.7},
			weights: []float64{1, 1, 1},
			want:    0.3,
		},
		{
			name:    "zero weight excludes the minimum",
			scores:  []float64{0.9, 0.3, 0.7},
			weights: []float64{1, 0, 1},
			want:    0.7,
		},
		{
			name:    "weight magnitude does not matter",
			scores:  []float64{0.6, 0.4},
			weights: []float64{100, 0.001},
			want:    0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Minimum(tt.scores, tt.weights)
			if err != nil {
				t.Fatalf("Minimum failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Minimum = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestDegenerateWeights tests that zero total weight never yields a number
func TestDegenerateWeights(t *testing.T) {
	for name, strategy := range map[string]Strategy{
		StrategyWeightedAverage: WeightedAverage,
		StrategyGeometricMean:   GeometricMean,
		StrategyMinimum:         Minimum,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := strategy([]float64{0.5, 0.5}, []float64{0, 0})
			if !errors.Is(err, ErrDegenerateWeights) {
				t.Errorf("%s with all-zero weights: got err %v, want ErrDegenerateWeights", name, err)
			}
		})
	}
}

// TestStrategyByName tests name resolution
func TestStrategyByName(t *testing.T) {
	for _, name := range StrategyNames() {
		if _, err := StrategyByName(name); err != nil {
			t.Errorf("StrategyByName(%q) failed: %v", name, err)
		}
	}

	_, err := StrategyByName("harmonic_mean")
	var unknownErr *UnknownStrategyError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("StrategyByName(unknown): got err %v, want UnknownStrategyError", err)
	}
	if unknownErr.Name != "harmonic_mean" {
		t.Errorf("UnknownStrategyError.Name = %q, want %q", unknownErr.Name, "harmonic_mean")
	}
}
