package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/climate"
)

func TestCatalogWithinAcceptedRanges(t *testing.T) {
	if len(Presets) != 5 {
		t.Fatalf("got %d presets, want 5", len(Presets))
	}
	for _, p := range Presets {
		if !EccentricityRange.Contains(p.Orbit.Eccentricity) {
			t.Errorf("%s: eccentricity %v outside accepted range", p.Name, p.Orbit.Eccentricity)
		}
		if !AxialTiltRange.Contains(p.Orbit.TiltDeg) {
			t.Errorf("%s: tilt %v outside accepted range", p.Name, p.Orbit.TiltDeg)
		}
		if !PrecessionRange.Contains(p.Orbit.PrecessionDeg) {
			t.Errorf("%s: precession %v outside accepted range", p.Name, p.Orbit.PrecessionDeg)
		}
		if p.CO2ppm < 1 {
			t.Errorf("%s: co2 %v below 1 ppm", p.Name, p.CO2ppm)
		}
	}
}

func TestPETMCO2Window(t *testing.T) {
	p, err := ByName("PETM")
	if err != nil {
		t.Fatal(err)
	}
	if !PETMCO2Range.Contains(p.CO2ppm) {
		t.Errorf("PETM co2 %v outside proxy window", p.CO2ppm)
	}
}

func TestByName(t *testing.T) {
	p, err := ByName("lgm")
	if err != nil {
		t.Fatalf("case-insensitive lookup failed: %v", err)
	}
	if p.CO2ppm != 180 || p.Year != -21000 {
		t.Errorf("LGM preset = %+v", p)
	}

	if _, err := ByName("Jurassic"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestPresetInputs(t *testing.T) {
	p, _ := ByName("Mid-Holocene")
	in := p.Inputs(0.5, 5000)

	if in.Orbit != p.Orbit {
		t.Error("preset orbit not carried into inputs")
	}
	if in.Atmosphere.CO2ppm != 265 || in.Season != 0.5 || in.TimeScaleYears != 5000 {
		t.Errorf("inputs = %+v", in)
	}
	if in.Sensitivity != climate.SensitivityMedium {
		t.Errorf("sensitivity = %v, want medium default", in.Sensitivity)
	}
}

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	doc := `name: hothouse test
orbit:
  eccentricity: 0.05
  precession: 180
atmosphere:
  co2_ppm: 1200
latitude: 10
sensitivity: high
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "hothouse test" {
		t.Errorf("name = %q", f.Name)
	}

	in := f.Apply(climate.DefaultInputs())
	if in.Orbit.Eccentricity != 0.05 || in.Orbit.PrecessionDeg != 180 {
		t.Errorf("orbit overrides not applied: %+v", in.Orbit)
	}
	if in.Orbit.TiltDeg != 23.44 {
		t.Errorf("unset tilt should stay at the default, got %v", in.Orbit.TiltDeg)
	}
	if in.Atmosphere.CO2ppm != 1200 || in.LatitudeDeg != 10 {
		t.Errorf("overrides not applied: %+v", in)
	}
	if in.Sensitivity != climate.SensitivityHigh {
		t.Errorf("sensitivity = %v, want high", in.Sensitivity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
