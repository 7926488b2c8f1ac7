package scoring

import "github.com/exohab/exohab/internal/entities"

// Engine orchestrates a scoring run: every registered factor is evaluated
// against the entities, the results are aggregated through the configured
// normalization strategy, and the outcome is stamped with the engine version
// and disclaimer.
//
// The engine holds no mutable state across calls and performs no I/O, so a
// single Engine value is safe for concurrent use by any number of
// goroutines once constructed.
type Engine struct {
	registry *Registry
	config   Config
	strategy Strategy
}

// NewEngine validates the configuration against the registry and returns a
// ready engine. Configuration errors (ConfigValidationError,
// UnknownStrategyError) are fatal: no engine is returned.
func NewEngine(registry *Registry, config Config) (*Engine, error) {
	if err := config.Validate(registry); err != nil {
		return nil, err
	}
	strategy, err := StrategyByName(config.Normalization)
	if err != nil {
		return nil, err
	}
	return &Engine{registry: registry, config: config, strategy: strategy}, nil
}

// Registry exposes the engine's factor registry, read-only.
func (e *Engine) Registry() *Registry { return e.registry }

// Config exposes the engine's validated configuration.
func (e *Engine) Config() Config { return e.config }

// Score evaluates every registered factor against the entities and returns
// the complete assessment. The entities are borrowed read-only for the
// duration of the call; the returned assessment is independently owned by
// the caller.
//
// Missing physical data never fails a run — affected factors report their
// documented default at very_low confidence, which is reflected only in the
// per-factor confidence and the data completeness fraction. The only error
// surfaced here is ErrDegenerateWeights, when every configured weight is
// zero.
func (e *Engine) Score(star entities.Star, planet entities.Planet) (*Assessment, error) {
	factors := e.registry.All()

	results := make([]FactorResult, 0, len(factors))
	scores := make([]float64, 0, len(factors))
	weights := make([]float64, 0, len(factors))
	informative := 0

	for _, f := range factors {
		result := f.Evaluate(star, planet)
		result.Weight = e.config.WeightFor(f.ID())
		if result.Confidence.AboveVeryLow() {
			informative++
		}
		results = append(results, result)
		scores = append(scores, result.Score)
		weights = append(weights, result.Weight)
	}

	total, err := e.strategy(scores, weights)
	if err != nil {
		return nil, err
	}

	completeness := 0.0
	if len(factors) > 0 {
		completeness = float64(informative) / float64(len(factors))
	}

	return &Assessment{
		PlanetName:       planet.Name,
		HostStarName:     star.Name,
		TotalScore:       total,
		Category:         CategoryForScore(total),
		Factors:          results,
		DataCompleteness: completeness,
		Version:          EngineVersion,
		Disclaimer:       Disclaimer,
	}, nil
}
