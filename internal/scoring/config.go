package scoring

import "sort"

// DefaultWeight applies to every factor a configuration does not mention.
const DefaultWeight = 1.0

// Config is the immutable scoring configuration: a factor weight mapping and
// the normalization method name. It is validated once against the registry
// at load time; after that it is passed read-only into every scoring call.
// Reloading constructs a new value and swaps it atomically — Config is never
// mutated in place.
type Config struct {
	Weights       map[string]float64
	Normalization string
}

// DefaultConfig returns the zero-surprise configuration: every factor at
// weight 1.0 (implicitly) and the weighted-average strategy.
func DefaultConfig() Config {
	return Config{Normalization: StrategyWeightedAverage}
}

// WeightFor resolves the weight for a factor id, defaulting to 1.0 for ids
// the configuration does not mention.
func (c Config) WeightFor(id string) float64 {
	if w, ok := c.Weights[id]; ok {
		return w
	}
	return DefaultWeight
}

// Validate checks the configuration against the registry. Every supplied key
// must name a registered factor and carry a non-negative weight, and the
// normalization method must be known. Validation failure is fatal to the
// load; no partial configuration is accepted.
func (c Config) Validate(registry *Registry) error {
	var unknown, negative []string
	for id, w := range c.Weights {
		if !registry.Has(id) {
			unknown = append(unknown, id)
		}
		if w < 0 {
			negative = append(negative, id)
		}
	}
	if len(unknown) > 0 || len(negative) > 0 {
		// Map iteration order is random; sort so the error message is stable.
		sort.Strings(unknown)
		sort.Strings(negative)
		return &ConfigValidationError{UnknownKeys: unknown, NegativeWeights: negative}
	}

	if _, err := StrategyByName(c.Normalization); err != nil {
		return err
	}
	return nil
}
