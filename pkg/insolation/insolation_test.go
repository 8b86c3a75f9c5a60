package insolation

import (
	"math"
	"testing"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/orbit"
)

func presentDayOrbit() orbit.State {
	return orbit.State{
		Eccentricity:  orbit.Baseline.Eccentricity,
		TiltDeg:       orbit.Baseline.TiltDeg,
		PrecessionDeg: orbit.PresentDayPrecession,
	}
}

func TestEquatorBaseline(t *testing.T) {
	// At season 0 the declination is ~0 and the orbital radius is at
	// perihelion distance 1-e: Q = S0 / (pi (1-e)^2) ~ 448 W/m².
	got := Baseline(0, 0)
	if math.Abs(got-448.1) > 0.5 {
		t.Errorf("Baseline(0, 0) = %.2f, want ~448.1", got)
	}
}

func TestNonNegativeAndFiniteGrid(t *testing.T) {
	orbits := []orbit.State{
		orbit.Baseline,
		presentDayOrbit(),
		{Eccentricity: 0.058, TiltDeg: 22.1, PrecessionDeg: 275},
		{Eccentricity: 0.2, TiltDeg: 45, PrecessionDeg: 359.9},
		{Eccentricity: 0, TiltDeg: 10, PrecessionDeg: 0},
	}
	for _, st := range orbits {
		for lat := -90.0; lat <= 90; lat += 7.5 {
			for s := 0.0; s < 1; s += 0.05 {
				q := Daily(lat, s, st)
				if math.IsNaN(q) || math.IsInf(q, 0) {
					t.Fatalf("Daily(%v, %v, %+v) not finite", lat, s, st)
				}
				if q < 0 {
					t.Fatalf("Daily(%v, %v, %+v) = %v < 0", lat, s, st, q)
				}
			}
		}
	}
}

func TestPolarNight(t *testing.T) {
	darkNorth := []float64{0.05, 0.1, 0.15, 0.75, 0.9, 0.99}
	for _, s := range darkNorth {
		if q := Daily(90, s, orbit.Baseline); q != 0 {
			t.Errorf("north pole at season %v: Q = %v, want 0", s, q)
		}
	}

	darkSouth := []float64{0.25, 0.4, 0.5, 0.65}
	for _, s := range darkSouth {
		if q := Daily(-90, s, orbit.Baseline); q != 0 {
			t.Errorf("south pole at season %v: Q = %v, want 0", s, q)
		}
	}
}

func TestPolarLitSeason(t *testing.T) {
	// Q = S0/4 * sin(tilt) * (1 + e*sin(pi*(s-0.25))) at s = 0.45:
	// 340.25 * 0.39768 * 1.00982 ~ 136.6.
	got := Daily(90, 0.45, orbit.Baseline)
	if math.Abs(got-136.6) > 0.3 {
		t.Errorf("north pole lit season Q = %.2f, want ~136.6", got)
	}

	// South pole is lit in the opposite half of the year.
	if q := Daily(-90, 0.9, orbit.Baseline); q <= 0 {
		t.Errorf("south pole at season 0.9: Q = %v, want > 0", q)
	}
}

func TestNorthernSummerContrast(t *testing.T) {
	// Under today's longitude of perihelion, 65°N receives far more
	// insolation at s = 0.25 than at s = 0.75.
	summer := Daily(65, 0.25, presentDayOrbit())
	winter := Daily(65, 0.75, presentDayOrbit())
	if summer <= winter {
		t.Errorf("65°N: summer %.1f <= winter %.1f", summer, winter)
	}
}

func TestSeasonWraps(t *testing.T) {
	a := Daily(45, 0.25, orbit.Baseline)
	b := Daily(45, 1.25, orbit.Baseline)
	c := Daily(45, -0.75, orbit.Baseline)
	if a != b || a != c {
		t.Errorf("season wrap mismatch: %v, %v, %v", a, b, c)
	}
}

func TestPrecessionWraps(t *testing.T) {
	a := Daily(45, 0.3, orbit.State{Eccentricity: 0.02, TiltDeg: 23, PrecessionDeg: 30})
	b := Daily(45, 0.3, orbit.State{Eccentricity: 0.02, TiltDeg: 23, PrecessionDeg: 390})
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("precession wrap mismatch: %v vs %v", a, b)
	}
}

func TestNonFiniteInputsYieldZero(t *testing.T) {
	bad := orbit.State{Eccentricity: math.NaN(), TiltDeg: 23.44}
	if q := Daily(45, 0.25, bad); q != 0 {
		t.Errorf("NaN eccentricity: Q = %v, want 0", q)
	}
	if q := Daily(45, math.Inf(1), orbit.Baseline); math.IsNaN(q) || q < 0 {
		t.Errorf("Inf season: Q = %v, want finite non-negative", q)
	}
}
