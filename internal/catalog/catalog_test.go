package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const earthRecord = `star:
  name: Sol
  spectral_type: G2V
  temperature_k: 5778
  luminosity_solar: 1.0
  age_gyr: 4.6
planets:
  - name: Earth
    semi_major_axis_au: 1.0
    period_days: 365.25
    eccentricity: 0.017
    radius_earth: 1.0
    mass_earth: 1.0
    density_g_cm3: 5.51
`

const sparseRecord = `star:
  name: Faint Star
planets:
  - name: Faint Star b
`

func writeRecord(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

// TestDiscoverFiles tests glob discovery of record files
func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "sol.system.yaml", earthRecord)
	writeRecord(t, dir, "nested/faint.system.yml", sparseRecord)
	writeRecord(t, dir, "notes.yaml", "not: a record")
	writeRecord(t, dir, "readme.md", "docs")

	c, err := NewCatalog(dir)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	files, err := c.DiscoverFiles()
	if err != nil {
		t.Fatalf("DiscoverFiles failed: %v", err)
	}

	want := []string{"nested/faint.system.yml", "sol.system.yaml"}
	if len(files) != len(want) {
		t.Fatalf("DiscoverFiles = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

// TestLoadSystem tests mapping a full record into entities
func TestLoadSystem(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "sol.system.yaml", earthRecord)

	c, err := NewCatalog(dir)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	system, err := c.LoadSystem("sol.system.yaml")
	if err != nil {
		t.Fatalf("LoadSystem failed: %v", err)
	}

	if system.Star.Name != "Sol" {
		t.Errorf("Star.Name = %q, want Sol", system.Star.Name)
	}
	if system.Star.SpectralType != "G2V" {
		t.Errorf("Star.SpectralType = %q, want G2V", system.Star.SpectralType)
	}
	if system.Star.TemperatureK == nil || *system.Star.TemperatureK != 5778 {
		t.Errorf("Star.TemperatureK = %v, want 5778", system.Star.TemperatureK)
	}
	if system.Star.MassSolar != nil {
		t.Errorf("Star.MassSolar = %v, want nil for the absent field", system.Star.MassSolar)
	}

	if len(system.Planets) != 1 {
		t.Fatalf("got %d planets, want 1", len(system.Planets))
	}
	planet := system.Planets[0]
	if planet.Name != "Earth" {
		t.Errorf("planet.Name = %q, want Earth", planet.Name)
	}
	if planet.HostStarName != "Sol" {
		t.Errorf("planet.HostStarName = %q, want Sol", planet.HostStarName)
	}
	if planet.Eccentricity == nil || *planet.Eccentricity != 0.017 {
		t.Errorf("planet.Eccentricity = %v, want 0.017", planet.Eccentricity)
	}
	if planet.EquilibriumTempK != nil {
		t.Errorf("planet.EquilibriumTempK = %v, want nil for the absent field", planet.EquilibriumTempK)
	}
	if planet.TidallyLocked != nil {
		t.Errorf("planet.TidallyLocked = %v, want nil for the absent field", planet.TidallyLocked)
	}
}

// TestLoadSystemSparse tests that a minimal record maps every optional field
// to nil
func TestLoadSystemSparse(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "faint.system.yaml", sparseRecord)

	c, err := NewCatalog(dir)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	system, err := c.LoadSystem("faint.system.yaml")
	if err != nil {
		t.Fatalf("LoadSystem failed: %v", err)
	}

	star := system.Star
	if star.MassSolar != nil || star.RadiusSolar != nil || star.TemperatureK != nil ||
		star.LuminositySolar != nil || star.LuminosityLog != nil || star.AgeGyr != nil {
		t.Errorf("sparse star should have all optional fields nil: %+v", star)
	}
	p := system.Planets[0]
	if p.SemiMajorAxisAU != nil || p.PeriodDays != nil || p.Eccentricity != nil ||
		p.RadiusEarth != nil || p.MassEarth != nil || p.DensityGCm3 != nil ||
		p.EquilibriumTempK != nil || p.TidallyLocked != nil {
		t.Errorf("sparse planet should have all optional fields nil: %+v", p)
	}
}

// TestLoadSystemExplicitZone tests that explicitly supplied habitable-zone
// boundaries map onto the star and win over derived boundaries
func TestLoadSystemExplicitZone(t *testing.T) {
	const record = `star:
  name: Sol
  temperature_k: 5778
  luminosity_solar: 1.0
  habitable_zone:
    conservative_inner_au: 0.95
    conservative_outer_au: 1.67
    optimistic_inner_au: 0.75
    optimistic_outer_au: 1.77
planets:
  - name: Earth
    semi_major_axis_au: 1.0
`
	dir := t.TempDir()
	writeRecord(t, dir, "sol.system.yaml", record)

	c, err := NewCatalog(dir)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	system, err := c.LoadSystem("sol.system.yaml")
	if err != nil {
		t.Fatalf("LoadSystem failed: %v", err)
	}

	zone := system.Star.Zone
	if zone == nil {
		t.Fatal("Star.Zone = nil, want the supplied boundaries")
	}
	if zone.ConservativeInner != 0.95 || zone.ConservativeOuter != 1.67 {
		t.Errorf("conservative zone = [%v, %v], want [0.95, 1.67]", zone.ConservativeInner, zone.ConservativeOuter)
	}
	if zone.OptimisticInner != 0.75 || zone.OptimisticOuter != 1.77 {
		t.Errorf("optimistic zone = [%v, %v], want [0.75, 1.77]", zone.OptimisticInner, zone.OptimisticOuter)
	}

	hz, ok := system.Star.HabitableZone()
	if !ok {
		t.Fatal("HabitableZone() should succeed with supplied boundaries")
	}
	if hz != *zone {
		t.Errorf("HabitableZone() = %+v, want the supplied boundaries %+v", hz, *zone)
	}
}

// TestLoadSystemInvalid tests schema rejection of malformed records
func TestLoadSystemInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing star name",
			content: `star:
  spectral_type: G2V
planets:
  - name: b
`,
		},
		{
			name: "no planets",
			content: `star:
  name: Lonely
planets: []
`,
		},
		{
			name: "negative radius",
			content: `star:
  name: Sol
planets:
  - name: b
    radius_earth: -1.0
`,
		},
		{
			name: "eccentricity out of range",
			content: `star:
  name: Sol
planets:
  - name: b
    eccentricity: 1.5
`,
		},
		{
			name: "inverted habitable zone",
			content: `star:
  name: Sol
  habitable_zone:
    conservative_inner_au: 0.7
    conservative_outer_au: 1.67
    optimistic_inner_au: 0.9
    optimistic_outer_au: 1.77
planets:
  - name: b
`,
		},
		{
			name: "partial habitable zone",
			content: `star:
  name: Sol
  habitable_zone:
    conservative_inner_au: 0.95
    conservative_outer_au: 1.67
    optimistic_inner_au: 0.75
planets:
  - name: b
`,
		},
		{
			name:    "broken yaml",
			content: "star: [unclosed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeRecord(t, dir, "bad.system.yaml", tt.content)

			c, err := NewCatalog(dir)
			if err != nil {
				t.Fatalf("NewCatalog failed: %v", err)
			}

			_, err = c.LoadSystem("bad.system.yaml")
			if err == nil {
				t.Fatal("LoadSystem accepted an invalid record")
			}
		})
	}
}

// TestLoadAll tests batch loading and the abort-on-invalid behavior
func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "a.system.yaml", earthRecord)
	writeRecord(t, dir, "b.system.yaml", sparseRecord)

	c, err := NewCatalog(dir)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	systems, err := c.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(systems) != 2 {
		t.Fatalf("LoadAll returned %d systems, want 2", len(systems))
	}

	writeRecord(t, dir, "c.system.yaml", "star:\n  spectral_type: G2V\nplanets: []\n")
	if _, err := c.LoadAll(); err == nil {
		t.Error("LoadAll should fail when the catalog contains an invalid record")
	}
	var recordErr *RecordError
	_, err = c.LoadAll()
	if !errors.As(err, &recordErr) {
		t.Errorf("LoadAll error = %v, want RecordError", err)
	}
}

// TestLoadFile tests single-file loading outside a catalog root
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "sol.system.yaml", earthRecord)

	system, err := LoadFile(filepath.Join(dir, "sol.system.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if system.Star.Name != "Sol" {
		t.Errorf("Star.Name = %q, want Sol", system.Star.Name)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.system.yaml")); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
	if _, err := LoadFile(dir); err == nil {
		t.Error("LoadFile should fail for a directory")
	}
}
