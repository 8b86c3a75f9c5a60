package sweep

import (
	"math"
	"testing"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/climate"
)

func TestSeasonLatitudeGridShape(t *testing.T) {
	in := climate.DefaultInputs()
	cells := SeasonLatitude(in, 12)

	want := len(climate.Bands) * 12
	if len(cells) != want {
		t.Fatalf("got %d cells, want %d", len(cells), want)
	}

	for _, c := range cells {
		if math.IsNaN(c.TemperatureC) || c.TemperatureC < climate.MinTemperatureC || c.TemperatureC > climate.MaxTemperatureC {
			t.Fatalf("cell %s s=%v temperature %v out of bounds", c.Band.Name, c.Season, c.TemperatureC)
		}
		if c.IceFactor < 0 || c.IceFactor > 1 {
			t.Fatalf("cell %s s=%v ice %v out of [0, 1]", c.Band.Name, c.Season, c.IceFactor)
		}
		if c.Season < 0 || c.Season >= 1 {
			t.Fatalf("season %v outside [0, 1)", c.Season)
		}
	}
}

func TestSeasonLatitudeSingleSample(t *testing.T) {
	in := climate.DefaultInputs()
	in.Season = 0.4

	cells := SeasonLatitude(in, 0)
	if len(cells) != len(climate.Bands) {
		t.Fatalf("got %d cells, want one per band", len(cells))
	}
	for _, c := range cells {
		if c.Season != 0.4 {
			t.Errorf("season = %v, want the input season 0.4", c.Season)
		}
	}
}

func TestCO2SeriesMonotone(t *testing.T) {
	in := climate.DefaultInputs()
	in.Season = 0.5

	series := CO2Series(in, []float64{180, 280, 420, 560, 800, 1500})
	if len(series) != 6 {
		t.Fatalf("got %d points, want 6", len(series))
	}

	prev := math.Inf(-1)
	for _, p := range series {
		if p.GlobalTemperatureC < prev {
			t.Errorf("global mean decreased at %v ppm: %v < %v", p.CO2ppm, p.GlobalTemperatureC, prev)
		}
		prev = p.GlobalTemperatureC
	}
}
