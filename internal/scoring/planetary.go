package scoring

import (
	"fmt"

	"github.com/exohab/exohab/internal/entities"
)

// PlanetRadiusFactor scores planet size as a proxy for rocky composition.
// The bands follow the observed radius distribution: the curve peaks just
// above 1 R⊕ and falls sharply past the ~1.75 R⊕ radius gap, beyond which
// planets tend to carry substantial H/He envelopes.
type PlanetRadiusFactor struct{}

func (PlanetRadiusFactor) ID() string         { return "planet_radius" }
func (PlanetRadiusFactor) Name() string       { return "Planet Radius" }
func (PlanetRadiusFactor) Category() Category { return CategoryPlanetary }

func (f PlanetRadiusFactor) Evaluate(_ entities.Star, planet entities.Planet) FactorResult {
	if planet.RadiusEarth == nil {
		return missingData(f, "radius_earth", "R⊕", "0.8 - 1.6 R⊕")
	}

	r := *planet.RadiusEarth
	var score float64
	var outcome string
	switch {
	case r < 0.5:
		score, outcome = 0.3, "far smaller than Earth; retaining an atmosphere would be a struggle"
	case r < 0.8:
		score, outcome = 0.6, "Mars-to-Earth sized; atmospheric retention possible but geology likely subdued"
	case r < 1.25:
		score, outcome = 1.0, "Earth-like, the optimal size for a rocky world with a substantial atmosphere"
	case r < 1.75:
		score, outcome = 0.85, "a super-Earth below the radius gap, likely rocky with a thicker atmosphere"
	case r < 2.5:
		score, outcome = 0.4, "in the sub-Neptune regime above the radius gap; a significant H/He envelope is likely"
	case r < 4.0:
		score, outcome = 0.15, "Neptune-like; no solid surface for conventional habitability"
	default:
		score, outcome = 0.05, "a gas giant; any habitability would belong to its moons"
	}

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        clamp(score),
		InputValue:   fmt.Sprintf("%.2f", r),
		InputUnit:    "R⊕",
		OptimalRange: "0.8 - 1.6 R⊕",
		Explanation:  fmt.Sprintf("Radius of %.2f R⊕ is %s.", r, outcome),
		Confidence:   ConfidenceHigh,
	}
}

// PlanetMassFactor scores mass for atmosphere retention and geological
// activity; the optimum spans roughly half an Earth mass to a few.
type PlanetMassFactor struct{}

func (PlanetMassFactor) ID() string         { return "planet_mass" }
func (PlanetMassFactor) Name() string       { return "Planet Mass" }
func (PlanetMassFactor) Category() Category { return CategoryPlanetary }

func (f PlanetMassFactor) Evaluate(_ entities.Star, planet entities.Planet) FactorResult {
	if planet.MassEarth == nil {
		return missingData(f, "mass_earth", "M⊕", "0.5 - 5.0 M⊕")
	}

	m := *planet.MassEarth
	var score float64
	var outcome string
	switch {
	case m < 0.1:
		score, outcome = 0.15, "Mars-like; too little gravity to hold an atmosphere long-term"
	case m < 0.5:
		score, outcome = 0.4, "sub-Earth; retention is challenging and geological activity reduced"
	case m < 2.0:
		score, outcome = 1.0, "Earth-like, optimal for a rocky composition with active geology"
	case m < 5.0:
		score, outcome = 0.8, "a super-Earth; still likely rocky, with enhanced atmospheric retention"
	case m < 10.0:
		score, outcome = 0.4, "at the upper limit for rocky planets; a volatile envelope may have accreted"
	default:
		score, outcome = 0.1, "mini-Neptune territory; a thick gaseous envelope is almost certain"
	}

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        clamp(score),
		InputValue:   fmt.Sprintf("%.2f", m),
		InputUnit:    "M⊕",
		OptimalRange: "0.5 - 5.0 M⊕",
		Explanation:  fmt.Sprintf("Mass of %.2f M⊕ is %s.", m, outcome),
		Confidence:   ConfidenceHigh,
	}
}

// PlanetDensityFactor infers composition from bulk density; rocky
// compositions around Earth's 5.5 g/cm³ score highest.
type PlanetDensityFactor struct{}

func (PlanetDensityFactor) ID() string         { return "planet_density" }
func (PlanetDensityFactor) Name() string       { return "Planet Bulk Density" }
func (PlanetDensityFactor) Category() Category { return CategoryPlanetary }

func (f PlanetDensityFactor) Evaluate(_ entities.Star, planet entities.Planet) FactorResult {
	density, measured, ok := planet.Density()
	if !ok {
		return missingData(f, "density_g_cm3", "g/cm³", "4.0 - 6.0 g/cm³")
	}

	var score float64
	var outcome string
	switch {
	case density < 1.0:
		score, outcome = 0.05, "gas-dominated (compare Saturn at 0.69 g/cm³); no solid surface"
	case density < 2.0:
		score, outcome = 0.2, "volatile-rich, a water world or thick H/He atmosphere"
	case density < 3.5:
		score, outcome = 0.5, "an ice-rock mixture or low-iron rocky composition"
	case density < 5.0:
		score, outcome = 0.85, "rocky, comparable to Mars (3.93 g/cm³)"
	case density < 6.5:
		score, outcome = 1.0, "Earth-like (5.51 g/cm³), rocky with an iron core"
	default:
		score, outcome = 0.7, "iron-rich, Mercury-like; rocky with a large metallic core"
	}

	confidence := ConfidenceHigh
	if !measured {
		// Derived from radius + mass rather than measured directly.
		confidence = ConfidenceMedium
	}

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        clamp(score),
		InputValue:   fmt.Sprintf("%.2f", density),
		InputUnit:    "g/cm³",
		OptimalRange: "4.0 - 6.0 g/cm³",
		Explanation:  fmt.Sprintf("Bulk density of %.2f g/cm³ indicates the planet is %s.", density, outcome),
		Confidence:   confidence,
	}
}

// EquilibriumTemperatureFactor scores the no-atmosphere equilibrium
// temperature. Earth's T_eq is ~255 K with greenhouse warming lifting the
// surface to ~288 K, so the optimum sits at 230-300 K.
type EquilibriumTemperatureFactor struct{}

func (EquilibriumTemperatureFactor) ID() string         { return "equilibrium_temperature" }
func (EquilibriumTemperatureFactor) Name() string       { return "Equilibrium Temperature" }
func (EquilibriumTemperatureFactor) Category() Category { return CategoryPlanetary }

func (f EquilibriumTemperatureFactor) Evaluate(_ entities.Star, planet entities.Planet) FactorResult {
	if planet.EquilibriumTempK == nil {
		return missingData(f, "equilibrium_temp_k", "K", "230 - 300 K")
	}

	t := *planet.EquilibriumTempK
	var score float64
	var outcome string
	switch {
	case t < 150:
		score, outcome = 0.05, "extremely cold; surface water would be permanently frozen"
	case t < 200:
		score, outcome = 0.3, "very cold; only an extreme CO2 greenhouse could sustain liquid water"
	case t < 230:
		score, outcome = 0.6, "at the outer edge of habitability with strong greenhouse warming"
	case t < 260:
		score, outcome = 0.9, "in the optimal range, close to Earth's 255 K"
	case t < 300:
		score, outcome = 1.0, "excellent; an Earth-like atmosphere would support widespread liquid water"
	case t < 350:
		score, outcome = 0.6, "warm, with a risk of runaway greenhouse"
	case t < 450:
		score, outcome = 0.2, "hot; Venus-like runaway conditions are likely"
	default:
		score, outcome = 0.02, "extremely hot, likely a lava world"
	}

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        clamp(score),
		InputValue:   fmt.Sprintf("%.0f", t),
		InputUnit:    "K",
		OptimalRange: "230 - 300 K",
		Explanation:  fmt.Sprintf("Equilibrium temperature of %.0f K is %s.", t, outcome),
		// T_eq assumes an albedo model rather than a direct measurement.
		Confidence: ConfidenceMedium,
	}
}

// SurfaceGravityFactor scores surface gravity for atmospheric retention and
// biological compatibility; 0.7-1.5 g is the sweet spot.
type SurfaceGravityFactor struct{}

func (SurfaceGravityFactor) ID() string         { return "surface_gravity" }
func (SurfaceGravityFactor) Name() string       { return "Surface Gravity" }
func (SurfaceGravityFactor) Category() Category { return CategoryPlanetary }

func (f SurfaceGravityFactor) Evaluate(_ entities.Star, planet entities.Planet) FactorResult {
	g, ok := planet.SurfaceGravity()
	if !ok {
		return missingData(f, "mass_earth and radius_earth", "g", "0.7 - 1.5 g")
	}

	var score float64
	var outcome string
	switch {
	case g < 0.3:
		score, outcome = 0.3, "very low; Mars-like atmospheric escape is expected"
	case g < 0.7:
		score, outcome = 0.6, "below Earth's; a thinner, more easily lost atmosphere"
	case g < 1.5:
		score, outcome = 1.0, "Earth-like, optimal for retention and Earth-like biology"
	case g < 2.5:
		score, outcome = 0.7, "elevated; stronger retention but biology would need adaptations"
	case g < 4.0:
		score, outcome = 0.3, "very high; a challenge for complex biological structures"
	default:
		score, outcome = 0.1, "extreme; severely limiting for any surface life"
	}

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        clamp(score),
		InputValue:   fmt.Sprintf("%.2f", g),
		InputUnit:    "g",
		OptimalRange: "0.7 - 1.5 g",
		Explanation:  fmt.Sprintf("Surface gravity of %.2f g is %s.", g, outcome),
		// Derived from the mass and radius measurements.
		Confidence: ConfidenceMedium,
	}
}
