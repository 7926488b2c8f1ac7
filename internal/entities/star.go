// Package entities provides the immutable value records describing a host
// star and an exoplanet. These are the only inputs the scoring engine reads.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages.
//
// Every physical field is optional: a nil pointer means the measurement is
// unknown, which is the common case for real catalog data. Absence is a
// first-class state — callers must never substitute zero for a missing value.
package entities

import (
	"math"
	"strings"
)

// SpectralClass is the primary Morgan-Keenan spectral class of a star.
type SpectralClass string

// Spectral classes in order of decreasing temperature.
const (
	SpectralO       SpectralClass = "O"
	SpectralB       SpectralClass = "B"
	SpectralA       SpectralClass = "A"
	SpectralF       SpectralClass = "F"
	SpectralG       SpectralClass = "G"
	SpectralK       SpectralClass = "K"
	SpectralM       SpectralClass = "M"
	SpectralL       SpectralClass = "L"
	SpectralT       SpectralClass = "T"
	SpectralY       SpectralClass = "Y"
	SpectralUnknown SpectralClass = "UNKNOWN"
)

// LuminosityClass is the Morgan-Keenan luminosity class of a star.
type LuminosityClass string

const (
	LuminosityIa      LuminosityClass = "Ia"  // luminous supergiants
	LuminosityIb      LuminosityClass = "Ib"  // supergiants
	LuminosityII      LuminosityClass = "II"  // bright giants
	LuminosityIII     LuminosityClass = "III" // giants
	LuminosityIV      LuminosityClass = "IV"  // subgiants
	LuminosityV       LuminosityClass = "V"   // main-sequence dwarfs
	LuminosityVI      LuminosityClass = "VI"  // subdwarfs
	LuminosityVII     LuminosityClass = "VII" // white dwarfs
	LuminosityUnknown LuminosityClass = "UNKNOWN"
)

// SolarTempK is the Sun's effective temperature, used as the reference point
// for the Kopparapu habitable-zone polynomials.
const SolarTempK = 5778.0

// HabitableZone holds the orbital distance range (AU) where liquid surface
// water is plausible, for both the conservative (runaway greenhouse to
// maximum greenhouse) and optimistic (recent Venus to early Mars) limits.
// Invariant: ConservativeInner >= OptimisticInner and
// ConservativeOuter <= OptimisticOuter.
type HabitableZone struct {
	ConservativeInner float64 `json:"conservative_inner_au" yaml:"conservativeInnerAU"`
	ConservativeOuter float64 `json:"conservative_outer_au" yaml:"conservativeOuterAU"`
	OptimisticInner   float64 `json:"optimistic_inner_au" yaml:"optimisticInnerAU"`
	OptimisticOuter   float64 `json:"optimistic_outer_au" yaml:"optimisticOuterAU"`
}

// HZPosition describes where an orbital distance falls relative to a
// habitable zone.
type HZPosition string

const (
	HZTooHot          HZPosition = "too_hot"
	HZOptimisticInner HZPosition = "optimistic_inner_edge"
	HZConservative    HZPosition = "conservative_hz"
	HZOptimisticOuter HZPosition = "optimistic_outer_edge"
	HZTooCold         HZPosition = "too_cold"
)

// Classify returns the position of an orbital distance within the zone.
func (hz HabitableZone) Classify(distanceAU float64) HZPosition {
	switch {
	case distanceAU < hz.OptimisticInner:
		return HZTooHot
	case distanceAU < hz.ConservativeInner:
		return HZOptimisticInner
	case distanceAU <= hz.ConservativeOuter:
		return HZConservative
	case distanceAU <= hz.OptimisticOuter:
		return HZOptimisticOuter
	default:
		return HZTooCold
	}
}

// Star is the immutable record of a host star. Built upstream from catalog
// data; the engine borrows it read-only for the duration of a scoring call.
type Star struct {
	Name         string
	SpectralType string // full MK type, e.g. "G2V", "K5V", "M3.5V"

	MassSolar       *float64 // M☉
	RadiusSolar     *float64 // R☉
	TemperatureK    *float64 // effective temperature
	LuminositySolar *float64 // L☉, linear scale
	LuminosityLog   *float64 // log10(L/L☉), common in NASA archive exports
	AgeGyr          *float64 // billions of years

	// Zone may carry explicitly supplied habitable-zone boundaries. When nil
	// the zone is derived from luminosity and effective temperature.
	Zone *HabitableZone
}

// SpectralClass extracts the primary spectral class from the full type
// ("G2V" -> G, "M3.5V" -> M). Unknown or empty types yield SpectralUnknown.
func (s Star) SpectralClass() SpectralClass {
	if s.SpectralType == "" {
		return SpectralUnknown
	}
	switch c := SpectralClass(strings.ToUpper(s.SpectralType[:1])); c {
	case SpectralO, SpectralB, SpectralA, SpectralF, SpectralG,
		SpectralK, SpectralM, SpectralL, SpectralT, SpectralY:
		return c
	}
	return SpectralUnknown
}

// LuminosityClass extracts the MK luminosity class from the full spectral
// type ("G2V" -> V, "K3III" -> III). Longer Roman numerals are matched first
// so "VII" is not read as "V".
func (s Star) LuminosityClass() LuminosityClass {
	if s.SpectralType == "" {
		return LuminosityUnknown
	}
	spec := strings.ToUpper(s.SpectralType)
	switch {
	case strings.Contains(spec, "VII"):
		return LuminosityVII
	case strings.Contains(spec, "VI"):
		return LuminosityVI
	case strings.Contains(spec, "IV"):
		return LuminosityIV
	case strings.Contains(spec, "III"):
		return LuminosityIII
	case strings.Contains(spec, "II"):
		return LuminosityII
	case strings.Contains(spec, "IB"):
		return LuminosityIb
	case strings.Contains(spec, "IA"):
		return LuminosityIa
	case strings.Contains(spec, "V"):
		return LuminosityV
	}
	return LuminosityUnknown
}

// Luminosity returns the stellar luminosity in linear solar units, preferring
// the linear field, then the log field, then a Stefan-Boltzmann estimate from
// radius and temperature (L/L☉ = (R/R☉)² × (T/T☉)⁴).
func (s Star) Luminosity() (float64, bool) {
	if s.LuminositySolar != nil {
		return *s.LuminositySolar, true
	}
	if s.LuminosityLog != nil {
		return math.Pow(10, *s.LuminosityLog), true
	}
	if s.RadiusSolar != nil && s.TemperatureK != nil {
		r, t := *s.RadiusSolar, *s.TemperatureK
		return r * r * math.Pow(t/SolarTempK, 4), true
	}
	return 0, false
}

// HabitableZone returns the star's habitable-zone boundaries. Explicitly
// supplied boundaries win; otherwise they are derived from the Kopparapu
// et al. (2013, 2014) stellar flux polynomials, which need the luminosity.
// The second return is false when neither source is available.
func (s Star) HabitableZone() (HabitableZone, bool) {
	if s.Zone != nil {
		return *s.Zone, true
	}

	lum, ok := s.Luminosity()
	if !ok {
		return HabitableZone{}, false
	}

	teff := SolarTempK
	if s.TemperatureK != nil {
		teff = *s.TemperatureK
	}
	ts := teff - 5780 // offset from solar reference used by the polynomials

	// Effective stellar flux at each zone boundary for a 1 M⊕ planet.
	recentVenus := fluxPoly(ts, 1.7763, 1.4335e-4, 3.3954e-9, -7.6364e-12, -1.1950e-15)
	runawayGreenhouse := fluxPoly(ts, 1.0385, 1.2456e-4, 1.4612e-8, -7.6345e-12, -1.7511e-15)
	maxGreenhouse := fluxPoly(ts, 0.3507, 5.9578e-5, 1.6707e-9, -3.0058e-12, -5.1925e-16)
	earlyMars := fluxPoly(ts, 0.3207, 5.4471e-5, 1.5275e-9, -2.1709e-12, -3.8282e-16)

	if recentVenus <= 0 || runawayGreenhouse <= 0 || maxGreenhouse <= 0 || earlyMars <= 0 {
		return HabitableZone{}, false
	}

	// d = sqrt(L / S_eff)
	sqrtL := math.Sqrt(lum)
	return HabitableZone{
		ConservativeInner: sqrtL / math.Sqrt(runawayGreenhouse),
		ConservativeOuter: sqrtL / math.Sqrt(maxGreenhouse),
		OptimisticInner:   sqrtL / math.Sqrt(recentVenus),
		OptimisticOuter:   sqrtL / math.Sqrt(earlyMars),
	}, true
}

func fluxPoly(t, s0, a, b, c, d float64) float64 {
	return s0 + a*t + b*t*t + c*t*t*t + d*t*t*t*t
}

// Float is a convenience constructor for optional numeric fields.
func Float(v float64) *float64 { return &v }

// Bool is a convenience constructor for optional boolean fields.
func Bool(v bool) *bool { return &v }
