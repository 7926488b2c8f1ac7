package scoring

import "math"

// Strategy names recognized in configuration.
const (
	StrategyWeightedAverage = "weighted_average"
	StrategyGeometricMean   = "geometric_mean"
	StrategyMinimum         = "minimum"
)

// geometricMeanEpsilon floors scores inside the geometric mean so a single
// zero drags the total hard toward zero without forcing exactly zero. Hard
// veto semantics belong to the minimum strategy instead. Versioned under
// EngineVersion.
const geometricMeanEpsilon = 1e-6

// Strategy combines (score, weight) pairs into one total in [0,1]. Pure:
// the result depends only on the pairs, never on call order.
type Strategy func(scores, weights []float64) (float64, error)

// StrategyNames returns the known strategy names in their canonical order.
func StrategyNames() []string {
	return []string{StrategyWeightedAverage, StrategyGeometricMean, StrategyMinimum}
}

// StrategyByName resolves a strategy name, returning UnknownStrategyError for
// unrecognized names.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case StrategyWeightedAverage:
		return WeightedAverage, nil
	case StrategyGeometricMean:
		return GeometricMean, nil
	case StrategyMinimum:
		return Minimum, nil
	}
	return nil, &UnknownStrategyError{Name: name}
}

// WeightedAverage returns Σ(score·weight) / Σweight.
func WeightedAverage(scores, weights []float64) (float64, error) {
	var sum, totalWeight float64
	for i, s := range scores {
		sum += s * weights[i]
		totalWeight += weights[i]
	}
	if totalWeight <= 0 {
		return 0, ErrDegenerateWeights
	}
	return sum / totalWeight, nil
}

// GeometricMean returns exp(Σ(weight·ln(max(score,ε))) / Σweight). Low scores
// are punished far harder than in the weighted average.
func GeometricMean(scores, weights []float64) (float64, error) {
	var logSum, totalWeight float64
	for i, s := range scores {
		logSum += weights[i] * math.Log(math.Max(s, geometricMeanEpsilon))
		totalWeight += weights[i]
	}
	if totalWeight <= 0 {
		return 0, ErrDegenerateWeights
	}
	return math.Exp(logSum / totalWeight), nil
}

// Minimum returns the lowest score among factors with weight > 0; weight acts
// purely as an inclusion filter. This is the most conservative strategy: the
// weakest factor sets the total.
func Minimum(scores, weights []float64) (float64, error) {
	min := math.Inf(1)
	included := false
	for i, s := range scores {
		if weights[i] <= 0 {
			continue
		}
		included = true
		if s < min {
			min = s
		}
	}
	if !included {
		return 0, ErrDegenerateWeights
	}
	return min, nil
}
