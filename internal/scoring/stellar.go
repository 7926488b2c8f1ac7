package scoring

import (
	"fmt"

	"github.com/exohab/exohab/internal/entities"
)

// spectralScores maps the primary spectral class to a habitability score.
// G and K dwarfs combine long stable lifetimes with moderate activity; O/B/A
// stars burn out before complex life could evolve, and M dwarfs are penalized
// for flaring and close-in habitable zones.
var spectralScores = map[entities.SpectralClass]float64{
	entities.SpectralO:       0.05,
	entities.SpectralB:       0.10,
	entities.SpectralA:       0.20,
	entities.SpectralF:       0.60,
	entities.SpectralG:       0.95,
	entities.SpectralK:       0.90,
	entities.SpectralM:       0.45,
	entities.SpectralL:       0.10,
	entities.SpectralT:       0.05,
	entities.SpectralY:       0.02,
	entities.SpectralUnknown: 0.50,
}

var spectralSummaries = map[entities.SpectralClass]string{
	entities.SpectralO: "O-type stars live only millions of years, far too briefly for life to evolve.",
	entities.SpectralB: "B-type stars have 10-100 Myr lifetimes and intense UV flux.",
	entities.SpectralA: "A-type lifetimes of up to ~2 Gyr are marginal for complex life.",
	entities.SpectralF: "F-type stars offer 2-4 Gyr of stable burning, enough for simple life.",
	entities.SpectralG: "G-type stars like the Sun provide ~10 Gyr of stable radiation, the only confirmed life-bearing environment.",
	entities.SpectralK: "K-type orange dwarfs are extremely stable for 15-30+ Gyr with low UV emission, excellent for habitability.",
	entities.SpectralM: "M dwarfs are long-lived but flare frequently and force close-in, likely tidally locked habitable zones.",
	entities.SpectralL: "L-type objects are too faint; any habitable zone sits in the stellar activity zone.",
	entities.SpectralT: "T-type brown dwarfs lack the luminosity for a conventional habitable zone.",
	entities.SpectralY: "Y-type objects are planet-temperature brown dwarfs, unsuitable as hosts.",
}

// StellarTypeFactor scores the host star's spectral class for lifetime and
// radiation environment.
type StellarTypeFactor struct{}

func (StellarTypeFactor) ID() string         { return "stellar_type" }
func (StellarTypeFactor) Name() string       { return "Stellar Spectral Type" }
func (StellarTypeFactor) Category() Category { return CategoryStellar }

func (f StellarTypeFactor) Evaluate(star entities.Star, _ entities.Planet) FactorResult {
	if star.SpectralType == "" {
		return missingData(f, "spectral_type", "spectral class", "G0V - K5V")
	}

	class := star.SpectralClass()
	confidence := ConfidenceMedium
	switch class {
	case entities.SpectralF, entities.SpectralG, entities.SpectralK, entities.SpectralM:
		// Well-characterized main classes.
		confidence = ConfidenceHigh
	case entities.SpectralUnknown:
		confidence = ConfidenceVeryLow
	}

	explanation := spectralSummaries[class]
	if explanation == "" {
		explanation = fmt.Sprintf("Spectral type %s could not be classified; assigned the neutral default score.", star.SpectralType)
	}

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        clamp(spectralScores[class]),
		InputValue:   star.SpectralType,
		InputUnit:    "spectral class",
		OptimalRange: "G0V - K5V",
		Explanation:  explanation,
		Confidence:   confidence,
	}
}

// luminosityScores maps MK luminosity class to a score. Main-sequence dwarfs
// (class V) burn hydrogen stably for billions of years; evolved stars have
// variable output and short remaining lifetimes.
var luminosityScores = map[entities.LuminosityClass]float64{
	entities.LuminosityV:       1.0,
	entities.LuminosityVI:      0.7,
	entities.LuminosityIV:      0.5,
	entities.LuminosityIII:     0.2,
	entities.LuminosityII:      0.1,
	entities.LuminosityIb:      0.05,
	entities.LuminosityIa:      0.02,
	entities.LuminosityVII:     0.1,
	entities.LuminosityUnknown: 0.5,
}

// StellarLuminosityFactor scores whether the star is in a stable
// evolutionary phase, read from its MK luminosity class.
type StellarLuminosityFactor struct{}

func (StellarLuminosityFactor) ID() string         { return "stellar_luminosity" }
func (StellarLuminosityFactor) Name() string       { return "Stellar Luminosity Class" }
func (StellarLuminosityFactor) Category() Category { return CategoryStellar }

func (f StellarLuminosityFactor) Evaluate(star entities.Star, _ entities.Planet) FactorResult {
	if star.SpectralType == "" {
		return missingData(f, "spectral_type", "luminosity class", "V (main sequence)")
	}

	class := star.LuminosityClass()

	var explanation string
	confidence := ConfidenceMedium
	switch class {
	case entities.LuminosityV:
		explanation = "Main-sequence dwarf (class V): stable hydrogen core burning keeps the habitable zone in place for billions of years."
		confidence = ConfidenceHigh
	case entities.LuminosityIV:
		explanation = "Subgiant (class IV): the star is leaving the main sequence and its habitable zone is migrating outward."
	case entities.LuminosityIII, entities.LuminosityII:
		explanation = fmt.Sprintf("Evolved giant (class %s): variable luminosity and a short remaining lifetime rule out stable habitability.", class)
		confidence = ConfidenceHigh
	case entities.LuminosityIa, entities.LuminosityIb:
		explanation = fmt.Sprintf("Supergiant (class %s): a very short-lived phase before supernova, unsuitable as a host.", class)
		confidence = ConfidenceHigh
	case entities.LuminosityVII:
		explanation = "White dwarf remnant: any prior habitable planets were sterilized during the giant phase."
		confidence = ConfidenceHigh
	case entities.LuminosityVI:
		explanation = "Subdwarf (class VI): less luminous than a dwarf but stable."
	default:
		explanation = fmt.Sprintf("Luminosity class is not encoded in spectral type %s; evolutionary state is undetermined.", star.SpectralType)
		confidence = ConfidenceLow
	}

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        clamp(luminosityScores[class]),
		InputValue:   string(class),
		InputUnit:    "luminosity class",
		OptimalRange: "V (main sequence)",
		Explanation:  explanation,
		Confidence:   confidence,
	}
}

// StellarAgeFactor scores the age of the system. The curve peaks at 2-8 Gyr:
// young stars flare and bombard their planets, very old Sun-like stars are
// leaving the main sequence.
type StellarAgeFactor struct{}

func (StellarAgeFactor) ID() string         { return "stellar_age" }
func (StellarAgeFactor) Name() string       { return "Stellar System Age" }
func (StellarAgeFactor) Category() Category { return CategoryStellar }

func (f StellarAgeFactor) Evaluate(star entities.Star, _ entities.Planet) FactorResult {
	if star.AgeGyr == nil {
		return missingData(f, "age_gyr", "Gyr", "2 - 8 Gyr")
	}

	age := *star.AgeGyr
	var score float64
	var outcome string
	switch {
	case age < 0.5:
		score, outcome = 0.2, "very young; intense stellar activity and likely ongoing bombardment"
	case age < 1.0:
		score, outcome = 0.4, "young; stellar activity still elevated, only simple life plausible"
	case age < 2.0:
		score, outcome = 0.7, "approaching the optimal range; activity has settled"
	case age < 8.0:
		score, outcome = 1.0, "in the optimal range; ample time for complex life to evolve"
	case age < 10.0:
		score, outcome = 0.7, "mature; Sun-like hosts are nearing the end of stable main-sequence burning"
	default:
		score, outcome = 0.4, "very old; Sun-like hosts would be evolving off the main sequence"
	}

	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        clamp(score),
		InputValue:   fmt.Sprintf("%.1f", age),
		InputUnit:    "Gyr",
		OptimalRange: "2 - 8 Gyr",
		Explanation:  fmt.Sprintf("System age of %.1f Gyr is %s.", age, outcome),
		// Stellar ages carry large measurement uncertainties.
		Confidence: ConfidenceMedium,
	}
}

// HabitableZonePositionFactor scores the planet's orbital distance against
// the star's conservative and optimistic habitable zones. Outside the
// optimistic zone the score ramps down with fractional distance from the
// edge and saturates at zero.
type HabitableZonePositionFactor struct{}

func (HabitableZonePositionFactor) ID() string         { return "habitable_zone_position" }
func (HabitableZonePositionFactor) Name() string       { return "Habitable Zone Position" }
func (HabitableZonePositionFactor) Category() Category { return CategoryStellar }

func (f HabitableZonePositionFactor) Evaluate(star entities.Star, planet entities.Planet) FactorResult {
	if planet.SemiMajorAxisAU == nil {
		return missingData(f, "semi_major_axis_au", "AU", "conservative habitable zone")
	}
	distance := *planet.SemiMajorAxisAU

	hz, ok := star.HabitableZone()
	if !ok {
		return FactorResult{
			ID:           f.ID(),
			Name:         f.Name(),
			Category:     f.Category(),
			Score:        0.5,
			InputValue:   fmt.Sprintf("%.3f", distance),
			InputUnit:    "AU",
			OptimalRange: "conservative habitable zone",
			Explanation:  "Habitable zone cannot be located without stellar luminosity data; assigned the neutral default score.",
			Confidence:   ConfidenceVeryLow,
		}
	}

	var score float64
	var explanation string
	switch hz.Classify(distance) {
	case entities.HZConservative:
		score = 1.0
		explanation = fmt.Sprintf("Orbit at %.3f AU lies firmly within the conservative habitable zone (%.3f - %.3f AU); liquid surface water is plausible with an Earth-like atmosphere.",
			distance, hz.ConservativeInner, hz.ConservativeOuter)
	case entities.HZOptimisticInner:
		score = 0.7
		explanation = fmt.Sprintf("Orbit at %.3f AU falls in the optimistic inner habitable zone (%.3f - %.3f AU); warm, but liquid water remains possible with cloud feedback.",
			distance, hz.OptimisticInner, hz.ConservativeInner)
	case entities.HZOptimisticOuter:
		score = 0.7
		explanation = fmt.Sprintf("Orbit at %.3f AU falls in the optimistic outer habitable zone (%.3f - %.3f AU); liquid water would need a thick CO2 greenhouse.",
			distance, hz.ConservativeOuter, hz.OptimisticOuter)
	case entities.HZTooHot:
		excess := (hz.OptimisticInner - distance) / hz.OptimisticInner
		score = clamp(0.3 - excess)
		explanation = fmt.Sprintf("Orbit at %.3f AU is inside the inner habitable-zone edge (%.3f AU); runaway greenhouse conditions are likely.",
			distance, hz.OptimisticInner)
	default: // too cold
		excess := (distance - hz.OptimisticOuter) / hz.OptimisticOuter
		score = clamp(0.3 - excess*0.5)
		explanation = fmt.Sprintf("Orbit at %.3f AU is outside the outer habitable-zone edge (%.3f AU); surface water would be frozen.",
			distance, hz.OptimisticOuter)
	}

	// Distance is measured directly; the zone itself derives from stellar
	// parameters, but the classification is dominated by the measurement.
	return FactorResult{
		ID:           f.ID(),
		Name:         f.Name(),
		Category:     f.Category(),
		Score:        score,
		InputValue:   fmt.Sprintf("%.3f", distance),
		InputUnit:    "AU",
		OptimalRange: fmt.Sprintf("%.3f - %.3f AU (conservative)", hz.ConservativeInner, hz.ConservativeOuter),
		Explanation:  explanation,
		Confidence:   ConfidenceHigh,
	}
}
