package scoring

import (
	"fmt"

	"github.com/exohab/exohab/internal/entities"
)

// AtmosphereRetentionFactor estimates the planet's ability to hold a
// substantial atmosphere from its escape velocity, penalized by stellar
// activity (cool and young hosts strip atmospheres faster). Reads only
// derived physical quantities of the entities, never other factors' scores.
type AtmosphereRetentionFactor struct{}

func (AtmosphereRetentionFactor) ID() string         { return "atmosphere_retention" }
func (AtmosphereRetentionFactor) Name() string       { return "Atmosphere Retention Potential" }
func (AtmosphereRetentionFactor) Category() Category { return CategoryDerived }

func (f AtmosphereRetentionFactor) Evaluate(star entities.Star, planet entities.Planet) FactorResult {
	vesc, estimated, ok := planet.EscapeVelocity()
	if !ok {
		return missingData(f, "mass_earth or radius_earth", "km/s", "8 - 15 km/s")
	}

	var base float64
	var escapeNote string
	switch {
	case vesc < 3.0:
		base = 0.1
		escapeNote = "even heavy molecules like CO2 escape on geologic timescales"
	case vesc < 5.0:
		base = 0.3
		escapeNote = "Mars-like retention; light gases escape rapidly, heavier gases leak slowly"
	case vesc < 8.0:
		base = 0.6
		escapeNote = "N2, O2 and CO2 atmospheres are retainable but erode over billions of years"
	case vesc < 12.0:
		base = 0.85
		escapeNote = "Earth-like retention of all but the lightest gases"
	case vesc < 20.0:
		base = 0.95
		escapeNote = "excellent retention, even for hydrogen-rich atmospheres"
	default:
		base = 0.8
		escapeNote = "retention so strong a primordial H/He envelope may persist, suggesting a gas-rich composition"
	}

	var penalty float64
	activityNote := "a Sun-like or hotter host with moderate activity"
	if star.TemperatureK != nil {
		switch teff := *star.TemperatureK; {
		case teff < 3700:
			penalty = 0.2
			activityNote = "an M dwarf host whose flares and wind drive strong atmospheric loss"
		case teff < 4500:
			penalty = 0.1
			activityNote = "a late K dwarf host with moderately elevated activity"
		}
	}
	if star.AgeGyr != nil && *star.AgeGyr < 1.0 {
		penalty += 0.15
		activityNote += fmt.Sprintf(", still young at %.1f Gyr and correspondingly active", *star.AgeGyr)
	}

	score := base - penalty
	if score < 0.05 {
		score = 0.05
	}

	confidence := ConfidenceMedium
	if estimated {
		// One of mass/radius was substituted from a mass-radius relation.
		confidence = ConfidenceLow
	}

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        clamp(score),
		InputValue:   fmt.Sprintf("%.1f", vesc),
		InputUnit:    "km/s",
		OptimalRange: "8 - 15 km/s (Earth: 11.2 km/s)",
		Explanation: fmt.Sprintf("Escape velocity of %.1f km/s means %s, around %s.",
			vesc, escapeNote, activityNote),
		Confidence: confidence,
	}
}

// MagneticFieldFactor estimates the likelihood of a protective magnetic
// dynamo from mass (molten core), density (metallic core), and system age
// (core solidification). Exoplanet magnetic fields cannot be observed
// directly, so the result is always a low-confidence model estimate.
type MagneticFieldFactor struct{}

func (MagneticFieldFactor) ID() string         { return "magnetic_field" }
func (MagneticFieldFactor) Name() string       { return "Magnetic Field Potential" }
func (MagneticFieldFactor) Category() Category { return CategoryDerived }

func (f MagneticFieldFactor) Evaluate(star entities.Star, planet entities.Planet) FactorResult {
	if planet.MassEarth == nil && planet.RadiusEarth == nil {
		return missingData(f, "mass_earth or radius_earth", "", "Earth-like mass with high density")
	}

	var base float64
	var basis string
	switch {
	case planet.MassEarth != nil:
		m := *planet.MassEarth
		switch {
		case m < 0.2:
			base, basis = 0.2, fmt.Sprintf("very low mass (%.2f M⊕) suggests a small core unlikely to stay molten", m)
		case m < 0.5:
			base, basis = 0.4, fmt.Sprintf("sub-Earth mass (%.2f M⊕) may have a cooled, Mars-like core", m)
		case m < 1.5:
			base, basis = 0.8, fmt.Sprintf("Earth-like mass (%.2f M⊕) supports a convecting liquid core", m)
		case m < 5.0:
			base, basis = 0.9, fmt.Sprintf("super-Earth mass (%.2f M⊕) implies vigorous core convection", m)
		default:
			base, basis = 0.7, fmt.Sprintf("high mass (%.2f M⊕); a strong dynamo if rocky, different dynamics if gas-rich", m)
		}
	default:
		r := *planet.RadiusEarth
		switch {
		case r < 0.7:
			base, basis = 0.3, fmt.Sprintf("small radius (%.2f R⊕) suggests low mass", r)
		case r < 1.3:
			base, basis = 0.75, fmt.Sprintf("Earth-like radius (%.2f R⊕)", r)
		default:
			base, basis = 0.6, fmt.Sprintf("larger radius (%.2f R⊕) leaves the composition uncertain", r)
		}
	}

	var adjustment float64
	if density, _, ok := planet.Density(); ok {
		switch {
		case density > 5.0:
			adjustment += 0.1
			basis += fmt.Sprintf("; high density (%.1f g/cm³) indicates a substantial iron core", density)
		case density > 4.0:
			adjustment += 0.05
			basis += fmt.Sprintf("; rocky density (%.1f g/cm³) is consistent with an iron core", density)
		case density < 2.5:
			adjustment -= 0.2
			basis += fmt.Sprintf("; low density (%.1f g/cm³) suggests an ice- or gas-rich bulk", density)
		}
	}

	if star.AgeGyr != nil {
		switch age := *star.AgeGyr; {
		case age > 10.0:
			adjustment -= 0.15
			basis += fmt.Sprintf("; at %.1f Gyr the core may have solidified", age)
		case age > 8.0:
			adjustment -= 0.05
			basis += fmt.Sprintf("; core cooling may be advanced at %.1f Gyr", age)
		case age < 0.5:
			adjustment -= 0.1
			basis += fmt.Sprintf("; at %.1f Gyr the dynamo may still be establishing", age)
		}
	}

	// Short-period planets of cool stars rotate slowly once locked, which
	// weakens the dynamo even though tidal heating keeps the core fluid.
	if planet.PeriodDays != nil && *planet.PeriodDays < 30 &&
		star.TemperatureK != nil && *star.TemperatureK < 4000 {
		adjustment -= 0.1
		basis += "; likely slow (locked) rotation around a cool star weakens the dynamo"
	}

	score := clamp(base + adjustment)
	if score < 0.05 {
		score = 0.05
	}

	var summary string
	switch {
	case score >= 0.7:
		summary = "A protective magnetic field is likely"
	case score >= 0.4:
		summary = "A magnetic field is possible but uncertain"
	default:
		summary = "A magnetic field is unlikely, leaving the atmosphere exposed to stellar wind erosion"
	}

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        score,
		InputValue:   fmt.Sprintf("%.0f%%", score*100),
		InputUnit:    "estimated probability",
		OptimalRange: "Earth-like mass with high density",
		Explanation:  fmt.Sprintf("%s: %s.", summary, basis),
		Confidence:   ConfidenceLow,
	}
}
