package feedback

import (
	"math"
	"testing"
)

func TestBaselineTemperatureTable(t *testing.T) {
	cases := []struct {
		latDeg float64
		want   float64
	}{
		{0, 25},
		{30, 15},
		{65, -5},
		{90, -20},
		{-30, 16}, // southern adjustment
		{-65, -4},
		{-90, -19},
		{52.37, -5}, // nearest reference is 65
		{10, 25},
		{-10, 26},
	}
	for _, c := range cases {
		if got := BaselineTemperature(c.latDeg); got != c.want {
			t.Errorf("BaselineTemperature(%v) = %v, want %v", c.latDeg, got, c.want)
		}
	}
}

func TestBaselineTemperatureNonFinite(t *testing.T) {
	if got := BaselineTemperature(math.NaN()); got != 15 {
		t.Errorf("BaselineTemperature(NaN) = %v, want 15", got)
	}
}

func TestIceFractionExtremes(t *testing.T) {
	if f := IceFraction(-20, 90); f < 0.99 {
		t.Errorf("cold pole ice fraction = %v, want ~1", f)
	}
	if f := IceFraction(25, 0); f > 0.01 {
		t.Errorf("warm equator ice fraction = %v, want ~0", f)
	}
}

func TestIceFractionBoundsAndGuards(t *testing.T) {
	for temp := -100.0; temp <= 100; temp += 5 {
		for lat := -90.0; lat <= 90; lat += 15 {
			f := IceFraction(temp, lat)
			if f < 0 || f > 1 || math.IsNaN(f) {
				t.Fatalf("IceFraction(%v, %v) = %v out of [0, 1]", temp, lat, f)
			}
		}
	}
	if f := IceFraction(math.NaN(), 45); f != 0.5 {
		t.Errorf("IceFraction(NaN, 45) = %v, want 0.5", f)
	}
}

func TestIceFractionThresholdMidpoint(t *testing.T) {
	// At the latitude-dependent threshold the logistic sits at 1/2.
	lat := 60.0
	threshold := 2 * math.Cos(lat*math.Pi/180)
	if f := IceFraction(threshold, lat); math.Abs(f-0.5) > 1e-9 {
		t.Errorf("ice fraction at threshold = %v, want 0.5", f)
	}
}

func TestSeasonalVariationPhases(t *testing.T) {
	// Northern winter solstice reference: s = 0 gives the minimum.
	if got := SeasonalVariation(90, 0); math.Abs(got-(-20)) > 1e-9 {
		t.Errorf("north pole at s=0: %v, want -20", got)
	}
	if got := SeasonalVariation(90, 0.5); math.Abs(got-20) > 1e-9 {
		t.Errorf("north pole at s=0.5: %v, want +20", got)
	}
	if got := SeasonalVariation(0, 0.5); math.Abs(got) > 1e-9 {
		t.Errorf("equator seasonal amplitude = %v, want 0", got)
	}
}

func TestSeasonalAntisymmetry(t *testing.T) {
	for _, lat := range []float64{15, 30, 52.37, 65, 90} {
		for s := 0.0; s < 1; s += 0.1 {
			sum := SeasonalVariation(lat, s) + SeasonalVariation(-lat, s)
			if math.Abs(sum) > 1e-9 {
				t.Errorf("antisymmetry broken at lat %v season %v: sum = %v", lat, s, sum)
			}
		}
	}
}

func TestAlbedoResponseInterpolation(t *testing.T) {
	if got := AlbedoResponse(0); math.Abs(got-AlbedoResponseEquator) > 1e-9 {
		t.Errorf("AlbedoResponse(0) = %v, want %v", got, AlbedoResponseEquator)
	}
	if got := AlbedoResponse(90); math.Abs(got-AlbedoResponsePole) > 1e-9 {
		t.Errorf("AlbedoResponse(90) = %v, want %v", got, AlbedoResponsePole)
	}
	if got := AlbedoResponse(-90); math.Abs(got-AlbedoResponsePole) > 1e-9 {
		t.Errorf("AlbedoResponse(-90) = %v, want %v", got, AlbedoResponsePole)
	}
	// sin²(45°) = 1/2: midway between the two strengths.
	mid := AlbedoResponseEquator + (AlbedoResponsePole-AlbedoResponseEquator)/2
	if got := AlbedoResponse(45); math.Abs(got-mid) > 1e-9 {
		t.Errorf("AlbedoResponse(45) = %v, want %v", got, mid)
	}
}
