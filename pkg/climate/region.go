package climate

import "github.com/mrgreenish/milankovic-cycles-sub000/pkg/numeric"

// Band is one of the canonical latitude bands the regional aggregator
// evaluates. Weight is the band's share of the global mean.
type Band struct {
	Name        string  `json:"name"`
	LatitudeDeg float64 `json:"latitude"`
	Weight      float64 `json:"weight"`
}

// Bands lists the seven canonical bands, north to south. Weights sum
// to 1, asserted at init.
var Bands = []Band{
	{"North Pole", 90, 0.05},
	{"Northern High Latitudes", 65, 0.15},
	{"Northern Mid-Latitudes", 30, 0.25},
	{"Equator", 0, 0.10},
	{"Southern Mid-Latitudes", -30, 0.25},
	{"Southern High Latitudes", -65, 0.15},
	{"South Pole", -90, 0.05},
}

// fallbackGlobalTemperatureC is reported when no band produces a valid
// result.
const fallbackGlobalTemperatureC = 15.0

func init() {
	sum := 0.0
	for _, b := range Bands {
		sum += b.Weight
	}
	if sum < 0.999 || sum > 1.001 {
		panic("climate: band weights must sum to 1")
	}
}

// BandResult is a point result annotated with its band.
type BandResult struct {
	PointResult
	Band
}

// RegionResult is the outcome of evaluating every canonical band.
type RegionResult struct {
	Bands              []BandResult `json:"bands"`
	GlobalTemperatureC float64      `json:"global_temperature"`
}

// BandAt returns the result for the band at the given latitude, or nil.
func (r *RegionResult) BandAt(latDeg float64) *BandResult {
	for i := range r.Bands {
		if r.Bands[i].LatitudeDeg == latDeg {
			return &r.Bands[i]
		}
	}
	return nil
}

// RegionalTemperatures evaluates the point solver on each canonical
// band with the shared inputs and returns the weight-normalized global
// mean over the valid bands. A band is valid when its temperature is
// finite and no calculation error occurred. If every band fails, the
// result carries the fallback global mean of 15 °C.
func RegionalTemperatures(in Inputs) RegionResult {
	out := RegionResult{Bands: make([]BandResult, 0, len(Bands))}

	weightedSum := 0.0
	weightTotal := 0.0
	for _, b := range Bands {
		bandIn := in
		bandIn.LatitudeDeg = b.LatitudeDeg
		pr := PointTemperature(bandIn)

		out.Bands = append(out.Bands, BandResult{PointResult: pr, Band: b})

		if !pr.CalculationError && numeric.IsFinite(pr.TemperatureC) {
			weightedSum += b.Weight * pr.TemperatureC
			weightTotal += b.Weight
		}
	}

	if weightTotal > 0 {
		out.GlobalTemperatureC = weightedSum / weightTotal
	} else {
		out.GlobalTemperatureC = fallbackGlobalTemperatureC
	}
	return out
}
