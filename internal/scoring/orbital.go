package scoring

import (
	"fmt"

	"github.com/exohab/exohab/internal/entities"
)

// OrbitalEccentricityFactor scores orbital shape for climate stability.
// Stellar flux varies by ((1+e)/(1-e))² over an orbit, so even moderate
// eccentricity drives large seasonal swings.
type OrbitalEccentricityFactor struct{}

func (OrbitalEccentricityFactor) ID() string         { return "orbital_eccentricity" }
func (OrbitalEccentricityFactor) Name() string       { return "Orbital Eccentricity" }
func (OrbitalEccentricityFactor) Category() Category { return CategoryOrbital }

func (f OrbitalEccentricityFactor) Evaluate(_ entities.Star, planet entities.Planet) FactorResult {
	if planet.Eccentricity == nil {
		return missingData(f, "eccentricity", "", "0.0 - 0.1")
	}

	e := *planet.Eccentricity
	var score float64
	var outcome string
	switch {
	case e < 0.02:
		score, outcome = 1.0, "nearly circular (Earth: 0.017); climate would be very stable"
	case e < 0.1:
		score, outcome = 0.9, "low (Mars: 0.093); seasonal variation is notable but manageable"
	case e < 0.2:
		score, outcome = 0.7, "moderate (Mercury: 0.206); significant seasonal temperature swings"
	case e < 0.3:
		score, outcome = 0.5, "high; perihelion-aphelion temperature contrast would be extreme"
	case e < 0.5:
		score, outcome = 0.25, "very high; the planet may leave the habitable zone each orbit"
	case e < 0.8:
		score, outcome = 0.1, "extreme; alternating scorched and frozen passages"
	default:
		score, outcome = 0.02, "near-parabolic, more comet than planet; no stable climate is possible"
	}

	fluxRatio := ((1 + e) / (1 - e)) * ((1 + e) / (1 - e))

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        clamp(score),
		InputValue:   fmt.Sprintf("%.3f", e),
		OptimalRange: "0.0 - 0.1",
		Explanation: fmt.Sprintf("Eccentricity of %.3f is %s; stellar flux varies by ~%.0f%% over an orbit.",
			e, outcome, (fluxRatio-1)*100),
		Confidence: ConfidenceHigh,
	}
}

// TidalLockingFactor assesses the planet's rotation state. A catalog-supplied
// locking indicator is used directly; otherwise the locking probability is
// estimated from the host's effective temperature and the orbital distance
// (cool stars have close-in habitable zones that promote locking), or from
// the orbital period as a last resort. Locking reduces but does not preclude
// habitability: atmospheric circulation can redistribute heat.
type TidalLockingFactor struct{}

func (TidalLockingFactor) ID() string         { return "tidal_locking" }
func (TidalLockingFactor) Name() string       { return "Tidal Locking" }
func (TidalLockingFactor) Category() Category { return CategoryOrbital }

func (f TidalLockingFactor) Evaluate(star entities.Star, planet entities.Planet) FactorResult {
	if planet.TidallyLocked != nil {
		if *planet.TidallyLocked {
			return FactorResult{
				ID:           f.ID(),
				Name:         f.Name(),
				Category:     f.Category(),
				Score:        0.4,
				InputValue:   "locked",
				OptimalRange: "free rotation",
				Explanation:  "The planet is tidally locked; habitability depends on atmospheric heat transport to the night side, with the terminator band most temperate.",
				Confidence:   ConfidenceHigh,
			}
		}
		return FactorResult{
			ID:           f.ID(),
			Name:         f.Name(),
			Category:     f.Category(),
			Score:        1.0,
			InputValue:   "free rotation",
			OptimalRange: "free rotation",
			Explanation:  "The planet rotates freely, distributing heat through day-night cycles as Earth does.",
			Confidence:   ConfidenceHigh,
		}
	}

	probability, basis, ok := lockingProbability(star, planet)
	if !ok {
		return missingData(f, "semi_major_axis_au or period_days", "", "free rotation")
	}

	var score float64
	var status string
	switch {
	case probability < 0.1:
		score, status = 1.0, "locking is very unlikely; free rotation distributes heat like Earth"
	case probability < 0.3:
		score, status = 0.9, "locking is unlikely over typical planetary lifetimes"
	case probability < 0.5:
		score, status = 0.7, "locking is possible; a spin-orbit resonance like Mercury's is plausible"
	case probability < 0.7:
		score, status = 0.6, "locking is likely; habitability depends on atmospheric heat transport"
	case probability < 0.9:
		score, status = 0.5, "locking is very likely; a thick atmosphere could still redistribute heat"
	default:
		score, status = 0.4, "locking is essentially certain; the terminator band is the most temperate region"
	}

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        clamp(score),
		InputValue:   fmt.Sprintf("%.0f%%", probability*100),
		InputUnit:    "estimated probability",
		OptimalRange: "<30% probability",
		Explanation:  fmt.Sprintf("%s; %s.", basis, status),
		// Locking cannot be measured directly; this is a model estimate.
		Confidence: ConfidenceLow,
	}
}

// lockingProbability estimates the chance of synchronous rotation. Returns
// false when neither orbital distance nor period is known.
func lockingProbability(star entities.Star, planet entities.Planet) (float64, string, bool) {
	if planet.SemiMajorAxisAU != nil {
		a := *planet.SemiMajorAxisAU
		if star.TemperatureK == nil {
			// Distance-only fallback: probability decays linearly to zero
			// beyond 0.3 AU.
			p := 1 - a/0.3
			if p < 0 {
				p = 0
			}
			return p, fmt.Sprintf("Planet at %.3f AU of a star with unknown temperature", a), true
		}

		teff := *star.TemperatureK
		switch {
		case teff < 3700: // M dwarf
			basis := fmt.Sprintf("M dwarf host (T_eff %.0f K) with planet at %.3f AU", teff, a)
			switch {
			case a < 0.05:
				return 0.99, basis, true
			case a < 0.1:
				return 0.95, basis, true
			case a < 0.2:
				return 0.7, basis, true
			case a < 0.5:
				return 0.3, basis, true
			}
			return 0.05, basis, true
		case teff < 5200: // K dwarf
			basis := fmt.Sprintf("K dwarf host (T_eff %.0f K) with planet at %.3f AU", teff, a)
			switch {
			case a < 0.1:
				return 0.8, basis, true
			case a < 0.3:
				return 0.4, basis, true
			case a < 0.5:
				return 0.1, basis, true
			}
			return 0.02, basis, true
		case teff < 6000: // G dwarf
			basis := fmt.Sprintf("G dwarf host (T_eff %.0f K) with planet at %.3f AU", teff, a)
			switch {
			case a < 0.1:
				return 0.5, basis, true
			case a < 0.3:
				return 0.1, basis, true
			}
			return 0.01, basis, true
		default: // F and hotter: distant habitable zones
			return 0.01, fmt.Sprintf("Hot host (T_eff %.0f K) with planet at %.3f AU", teff, a), true
		}
	}

	if planet.PeriodDays != nil {
		period := *planet.PeriodDays
		basis := fmt.Sprintf("Orbital period of %.1f days (distance unknown)", period)
		switch {
		case period < 10:
			return 0.9, basis, true
		case period < 30:
			return 0.5, basis, true
		case period < 100:
			return 0.2, basis, true
		}
		return 0.05, basis, true
	}

	return 0, "", false
}
