// Package sweep evaluates the climate model over parameter grids for
// plotting and export.
package sweep

import "github.com/mrgreenish/milankovic-cycles-sub000/pkg/climate"

// SeasonCell is one cell of a season-by-latitude grid.
type SeasonCell struct {
	Band         climate.Band `json:"band"`
	Season       float64      `json:"season"`
	TemperatureC float64      `json:"temperature"`
	IceFactor    float64      `json:"ice_factor"`
	InsolationC  float64      `json:"insolation_effect"`
	SeasonalC    float64      `json:"seasonal_effect"`
}

// SeasonLatitude evaluates the point solver on every canonical band at
// nSeasons evenly spaced seasons, with the shared inputs. Fewer than
// two seasons collapses to a single evaluation at the input's season.
func SeasonLatitude(in climate.Inputs, nSeasons int) []SeasonCell {
	if nSeasons < 2 {
		nSeasons = 1
	}

	cells := make([]SeasonCell, 0, len(climate.Bands)*nSeasons)
	for _, b := range climate.Bands {
		for i := 0; i < nSeasons; i++ {
			s := in.Season
			if nSeasons > 1 {
				s = float64(i) / float64(nSeasons)
			}

			cellIn := in
			cellIn.LatitudeDeg = b.LatitudeDeg
			cellIn.Season = s
			pr := climate.PointTemperature(cellIn)

			cells = append(cells, SeasonCell{
				Band:         b,
				Season:       s,
				TemperatureC: pr.TemperatureC,
				IceFactor:    pr.IceFactor,
				InsolationC:  pr.Effects.Insolation,
				SeasonalC:    pr.Effects.Seasonal,
			})
		}
	}
	return cells
}

// CO2Point is a global-mean temperature at one CO₂ concentration.
type CO2Point struct {
	CO2ppm             float64 `json:"co2_ppm"`
	GlobalTemperatureC float64 `json:"global_temperature"`
}

// CO2Series evaluates the regional aggregator across a CO₂ series,
// holding every other input fixed.
func CO2Series(in climate.Inputs, ppms []float64) []CO2Point {
	out := make([]CO2Point, 0, len(ppms))
	for _, ppm := range ppms {
		seriesIn := in
		seriesIn.Atmosphere.CO2ppm = ppm
		res := climate.RegionalTemperatures(seriesIn)
		out = append(out, CO2Point{CO2ppm: ppm, GlobalTemperatureC: res.GlobalTemperatureC})
	}
	return out
}
