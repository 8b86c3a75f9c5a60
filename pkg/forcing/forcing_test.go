package forcing

import (
	"math"
	"testing"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/orbit"
)

func TestCO2AtBaselineIsZero(t *testing.T) {
	if got := CO2(280); math.Abs(got) > 1e-12 {
		t.Errorf("CO2(280) = %v, want 0", got)
	}
}

func TestCO2Doubling(t *testing.T) {
	// 5.35 * ln(2) = 3.7083 W/m², the canonical doubling forcing.
	got := CO2(560)
	if math.Abs(got-3.7083) > 1e-3 {
		t.Errorf("CO2(560) = %.4f, want ~3.7083", got)
	}
}

func TestCO2StrictlyIncreasing(t *testing.T) {
	series := []float64{180, 280, 400, 560, 800, 1500}
	prev := CO2(series[0])
	for _, ppm := range series[1:] {
		f := CO2(ppm)
		if f <= prev {
			t.Errorf("CO2(%v) = %v not greater than previous %v", ppm, f, prev)
		}
		prev = f
	}
}

func TestCO2FloorsLowConcentrations(t *testing.T) {
	got := CO2(0)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("CO2(0) = %v, want finite", got)
	}
	if got != CO2(0.5) || got != CO2(1) {
		t.Error("concentrations below 1 ppm should clamp to the 1 ppm forcing")
	}
}

func TestTraceGasBaselines(t *testing.T) {
	if got := Methane(700); math.Abs(got) > 1e-12 {
		t.Errorf("Methane(700) = %v, want 0", got)
	}
	if got := NitrousOxide(270); math.Abs(got) > 1e-12 {
		t.Errorf("NitrousOxide(270) = %v, want 0", got)
	}
	if Methane(1800) <= 0 {
		t.Error("modern methane should force positively")
	}
	if NitrousOxide(330) <= 0 {
		t.Error("modern N2O should force positively")
	}
}

func TestAerosolCools(t *testing.T) {
	// -25*0.1 - 0.7*ln(2) = -2.985 W/m².
	got := Aerosol(0.1)
	if math.Abs(got-(-2.985)) > 1e-3 {
		t.Errorf("Aerosol(0.1) = %.4f, want ~-2.985", got)
	}
	if Aerosol(0) != 0 {
		t.Error("zero optical depth should not force")
	}
	if Aerosol(math.NaN()) != 0 {
		t.Error("non-finite optical depth should not force")
	}
}

func TestTotalSkipsUnsetGases(t *testing.T) {
	a := orbit.Atmosphere{CO2ppm: 560}
	if got := Total(a); math.Abs(got-CO2(560)) > 1e-12 {
		t.Errorf("Total with CO2 only = %v, want %v", got, CO2(560))
	}

	a.CH4ppb = 1800
	a.AerosolOD = 0.1
	want := CO2(560) + Methane(1800) + Aerosol(0.1)
	if got := Total(a); math.Abs(got-want) > 1e-12 {
		t.Errorf("Total = %v, want %v", got, want)
	}
}
