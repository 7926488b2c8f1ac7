package entities

import "math"

// Physical reference constants, Earth-relative. Derived quantities below are
// expressed in Earth units so the factor curves can compare against 1.0.
const (
	EarthDensityGCm3       = 5.514  // bulk density of Earth
	EarthEscapeVelocityKmS = 11.186 // escape velocity of Earth
)

// Planet is the immutable record of an exoplanet. Fields are independently
// optional; a nil pointer means the measurement is unknown.
type Planet struct {
	Name         string
	HostStarName string

	// Orbital parameters
	SemiMajorAxisAU *float64
	PeriodDays      *float64
	Eccentricity    *float64 // 0 <= e < 1

	// Physical parameters
	RadiusEarth      *float64 // R⊕
	MassEarth        *float64 // M⊕
	DensityGCm3      *float64 // bulk density, g/cm³
	EquilibriumTempK *float64 // K, no-atmosphere equilibrium temperature

	// TidallyLocked is the catalog's locking indicator when determined;
	// nil means undetermined and the scoring layer estimates it.
	TidallyLocked *bool
}

// Density returns the bulk density in g/cm³, preferring the measured value
// and falling back to M/R³ scaling from Earth's density. The second return
// reports whether the value came from a direct measurement.
func (p Planet) Density() (value float64, measured, ok bool) {
	if p.DensityGCm3 != nil {
		return *p.DensityGCm3, true, true
	}
	if p.MassEarth != nil && p.RadiusEarth != nil && *p.RadiusEarth > 0 {
		r := *p.RadiusEarth
		return EarthDensityGCm3 * *p.MassEarth / (r * r * r), false, true
	}
	return 0, false, false
}

// SurfaceGravity returns surface gravity in Earth gravities, from
// g/g⊕ = (M/M⊕)/(R/R⊕)².
func (p Planet) SurfaceGravity() (float64, bool) {
	if p.MassEarth == nil || p.RadiusEarth == nil || *p.RadiusEarth <= 0 {
		return 0, false
	}
	r := *p.RadiusEarth
	return *p.MassEarth / (r * r), true
}

// EscapeVelocity returns the escape velocity in km/s, scaled from Earth's
// 11.186 km/s by sqrt(M/R). When only one of mass or radius is known the
// other is estimated from a rough rocky mass-radius relation, which degrades
// the caller's confidence from derived to model-estimated.
func (p Planet) EscapeVelocity() (value float64, estimated, ok bool) {
	switch {
	case p.MassEarth != nil && p.RadiusEarth != nil && *p.RadiusEarth > 0:
		return EarthEscapeVelocityKmS * math.Sqrt(*p.MassEarth / *p.RadiusEarth), false, true
	case p.MassEarth != nil:
		m := *p.MassEarth
		r := math.Pow(m, 0.27) // R ∝ M^0.27 for rocky planets
		return EarthEscapeVelocityKmS * math.Sqrt(m/r), true, true
	case p.RadiusEarth != nil && *p.RadiusEarth > 0:
		r := *p.RadiusEarth
		m := math.Pow(r, 3.7) // inverse of the relation above
		return EarthEscapeVelocityKmS * math.Sqrt(m/r), true, true
	}
	return 0, false, false
}
