// Package catalog discovers and loads system record files. A catalog is a
// directory tree of *.system.yaml files, each describing one host star and
// its planets. Records are schema-validated before mapping; absent physical
// quantities map to nil pointers and flow through scoring untouched.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/exohab/exohab/internal/entities"
	"github.com/exohab/exohab/internal/schema"
)

// recordPatterns are the glob patterns for system record files.
// Patterns are matched against paths relative to the catalog root.
var recordPatterns = []string{
	"**/*.system.yaml",
	"**/*.system.yml",
}

// starRecord is the on-disk shape of a star. Pointer fields distinguish
// "absent" from "zero" when unmarshaling.
type starRecord struct {
	Name            string    `yaml:"name"`
	SpectralType    string    `yaml:"spectral_type"`
	MassSolar       *float64  `yaml:"mass_solar"`
	RadiusSolar     *float64  `yaml:"radius_solar"`
	TemperatureK    *float64  `yaml:"temperature_k"`
	LuminositySolar *float64  `yaml:"luminosity_solar"`
	LuminosityLog   *float64  `yaml:"luminosity_log"`
	AgeGyr          *float64  `yaml:"age_gyr"`
	HabitableZone   *hzRecord `yaml:"habitable_zone"`
}

// hzRecord carries explicitly supplied habitable-zone boundaries. The schema
// requires all four edges together, so plain floats suffice here.
type hzRecord struct {
	ConservativeInnerAU float64 `yaml:"conservative_inner_au"`
	ConservativeOuterAU float64 `yaml:"conservative_outer_au"`
	OptimisticInnerAU   float64 `yaml:"optimistic_inner_au"`
	OptimisticOuterAU   float64 `yaml:"optimistic_outer_au"`
}

// planetRecord is the on-disk shape of a planet.
type planetRecord struct {
	Name             string   `yaml:"name"`
	SemiMajorAxisAU  *float64 `yaml:"semi_major_axis_au"`
	PeriodDays       *float64 `yaml:"period_days"`
	Eccentricity     *float64 `yaml:"eccentricity"`
	RadiusEarth      *float64 `yaml:"radius_earth"`
	MassEarth        *float64 `yaml:"mass_earth"`
	DensityGCm3      *float64 `yaml:"density_g_cm3"`
	EquilibriumTempK *float64 `yaml:"equilibrium_temp_k"`
	TidallyLocked    *bool    `yaml:"tidally_locked"`
}

// systemRecord is the on-disk shape of a record file.
type systemRecord struct {
	Star    starRecord     `yaml:"star"`
	Planets []planetRecord `yaml:"planets"`
}

// System is a loaded and validated record: one star and its planets.
type System struct {
	Path    string
	Star    entities.Star
	Planets []entities.Planet
}

// RecordError reports a record file that failed schema validation.
type RecordError struct {
	Path     string
	Problems []string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("invalid system record %s: %s", e.Path, strings.Join(e.Problems, "; "))
}

// Catalog manages record discovery and loading under a root directory.
type Catalog struct {
	rootPath  string
	validator *schema.Validator
}

// NewCatalog creates a Catalog rooted at rootPath. The embedded record
// schemas are loaded once here.
func NewCatalog(rootPath string) (*Catalog, error) {
	validator := schema.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return nil, fmt.Errorf("error loading record schemas: %w", err)
	}
	return &Catalog{rootPath: rootPath, validator: validator}, nil
}

// Root returns the catalog root directory.
func (c *Catalog) Root() string { return c.rootPath }

// DiscoverFiles finds all system record files under the catalog root.
// Paths are returned relative to the root, sorted for deterministic output.
func (c *Catalog) DiscoverFiles() ([]string, error) {
	var files []string

	for _, pattern := range recordPatterns {
		matches, err := doublestar.Glob(os.DirFS(c.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			info, err := os.Stat(filepath.Join(c.rootPath, match))
			if err != nil || info.IsDir() {
				continue
			}
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}

// LoadSystem reads, validates, and maps a single record file. relPath is
// relative to the catalog root.
func (c *Catalog) LoadSystem(relPath string) (*System, error) {
	fullPath := filepath.Join(c.rootPath, relPath)

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read record %s: %w", relPath, err)
	}

	_, validationErrs, err := c.validator.ValidateRecord(relPath, content)
	if err != nil {
		return nil, err
	}
	if len(validationErrs) > 0 {
		problems := make([]string, len(validationErrs))
		for i, ve := range validationErrs {
			problems[i] = ve.Message
		}
		return nil, &RecordError{Path: relPath, Problems: problems}
	}

	var record systemRecord
	if err := yamlv3.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("cannot parse record %s: %w", relPath, err)
	}

	system := &System{
		Path: relPath,
		Star: mapStar(record.Star),
	}
	for _, p := range record.Planets {
		system.Planets = append(system.Planets, mapPlanet(p, record.Star.Name))
	}
	return system, nil
}

// LoadAll discovers and loads every record under the root. The first invalid
// record aborts the load; a catalog with a bad record is treated as broken
// rather than silently skipped.
func (c *Catalog) LoadAll() ([]System, error) {
	files, err := c.DiscoverFiles()
	if err != nil {
		return nil, err
	}

	systems := make([]System, 0, len(files))
	for _, f := range files {
		system, err := c.LoadSystem(f)
		if err != nil {
			return nil, err
		}
		systems = append(systems, *system)
	}
	return systems, nil
}

// LoadFile loads a single record from an explicit path, outside of any
// catalog root. Used when scoring one file directly.
func LoadFile(path string) (*System, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", absPath)
		}
		return nil, fmt.Errorf("cannot access file: %s: %w", absPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", absPath)
	}

	c, err := NewCatalog(filepath.Dir(absPath))
	if err != nil {
		return nil, err
	}
	return c.LoadSystem(filepath.Base(absPath))
}

func mapStar(r starRecord) entities.Star {
	star := entities.Star{
		Name:            r.Name,
		SpectralType:    r.SpectralType,
		MassSolar:       r.MassSolar,
		RadiusSolar:     r.RadiusSolar,
		TemperatureK:    r.TemperatureK,
		LuminositySolar: r.LuminositySolar,
		LuminosityLog:   r.LuminosityLog,
		AgeGyr:          r.AgeGyr,
	}
	if r.HabitableZone != nil {
		star.Zone = &entities.HabitableZone{
			ConservativeInner: r.HabitableZone.ConservativeInnerAU,
			ConservativeOuter: r.HabitableZone.ConservativeOuterAU,
			OptimisticInner:   r.HabitableZone.OptimisticInnerAU,
			OptimisticOuter:   r.HabitableZone.OptimisticOuterAU,
		}
	}
	return star
}

func mapPlanet(r planetRecord, hostName string) entities.Planet {
	return entities.Planet{
		Name:             r.Name,
		HostStarName:     hostName,
		SemiMajorAxisAU:  r.SemiMajorAxisAU,
		PeriodDays:       r.PeriodDays,
		Eccentricity:     r.Eccentricity,
		RadiusEarth:      r.RadiusEarth,
		MassEarth:        r.MassEarth,
		DensityGCm3:      r.DensityGCm3,
		EquilibriumTempK: r.EquilibriumTempK,
		TidallyLocked:    r.TidallyLocked,
	}
}
