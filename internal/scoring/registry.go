package scoring

// Registry holds the fixed, ordered set of factors. Registration order is the
// canonical output order; it must be stable across runs so serialized
// assessments are reproducible. The registry is built once at process start
// and treated as read-only thereafter — there is no removal operation.
type Registry struct {
	ordered []Factor
	byID    map[string]Factor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Factor)}
}

// Register appends a factor, rejecting duplicate ids.
func (r *Registry) Register(f Factor) error {
	if _, exists := r.byID[f.ID()]; exists {
		return &DuplicateFactorError{ID: f.ID()}
	}
	r.byID[f.ID()] = f
	r.ordered = append(r.ordered, f)
	return nil
}

// All returns the factors in registration order. Callers must not modify the
// returned slice.
func (r *Registry) All() []Factor {
	return r.ordered
}

// Get returns the factor registered under id, or nil.
func (r *Registry) Get(id string) Factor {
	return r.byID[id]
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Len returns the number of registered factors.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// IDs returns the factor ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.ordered))
	for _, f := range r.ordered {
		ids = append(ids, f.ID())
	}
	return ids
}

// DefaultRegistry builds the standard registry with all thirteen factors in
// their canonical order: stellar, planetary, orbital, then derived.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, f := range []Factor{
		StellarTypeFactor{},
		StellarLuminosityFactor{},
		StellarAgeFactor{},
		HabitableZonePositionFactor{},
		PlanetRadiusFactor{},
		PlanetMassFactor{},
		PlanetDensityFactor{},
		EquilibriumTemperatureFactor{},
		SurfaceGravityFactor{},
		OrbitalEccentricityFactor{},
		TidalLockingFactor{},
		AtmosphereRetentionFactor{},
		MagneticFieldFactor{},
	} {
		// Ids are compile-time constants; a duplicate here is a programming
		// error, not a runtime condition.
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}
