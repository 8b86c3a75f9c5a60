package validation

import (
	"fmt"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/climate"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/forcing"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/insolation"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/orbit"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/scenario"
)

// Sanity-check evaluation conditions: boreal summer solstice season
// and a time scale long enough to engage the ice-sheet response.
const (
	sanitySeason         = 0.5
	sanityTimeScaleYears = 5000.0
)

// co2MonotonicitySeries spans glacial to PETM concentrations.
var co2MonotonicitySeries = []float64{180, 280, 400, 560, 800, 1500}

// ValidatePresets runs the full preset and physics check suite:
// every catalog preset against the accepted paleoclimatic parameter
// windows, an end-to-end temperature sanity evaluation per preset,
// CO₂-forcing monotonicity, and the 65°N summer insolation pattern.
func ValidatePresets() *Report {
	r := NewReport()

	for _, p := range scenario.Presets {
		checkPresetRanges(p, r)
	}
	for _, p := range scenario.Presets {
		checkPresetTemperature(p, r)
	}
	checkForcingMonotonicity(r)
	checkInsolationPattern(r)

	return r
}

func checkPresetRanges(p scenario.Preset, r *Report) {
	type rangeCheck struct {
		parameter string
		value     float64
		window    scenario.Range
	}
	checks := []rangeCheck{
		{"eccentricity", p.Orbit.Eccentricity, scenario.EccentricityRange},
		{"axial_tilt", p.Orbit.TiltDeg, scenario.AxialTiltRange},
		{"precession", p.Orbit.PrecessionDeg, scenario.PrecessionRange},
	}
	if p.Name == "PETM" {
		checks = append(checks, rangeCheck{"co2_ppm", p.CO2ppm, scenario.PETMCO2Range})
	}

	ok := true
	for _, c := range checks {
		if !c.window.Contains(c.value) {
			ok = false
			r.AddError(Result{
				Level:       LevelRange,
				Check:       "parameter-range",
				Preset:      p.Name,
				Parameter:   c.parameter,
				Message:     fmt.Sprintf("%s: %s %.4g outside accepted range", p.Name, c.parameter, c.value),
				ActualValue: c.value,
				Expected:    fmt.Sprintf("[%.4g, %.4g]", c.window.Min, c.window.Max),
			})
		}
	}
	if ok {
		r.AddInfo(Result{
			Level:   LevelRange,
			Check:   "parameter-range",
			Preset:  p.Name,
			Message: fmt.Sprintf("%s: orbital parameters within accepted ranges", p.Name),
		})
	}
}

// checkPresetTemperature evaluates the production regional model for a
// preset and compares the global mean against the catalog's expected
// window. The windows were calibrated against a simplified reference
// model, so a miss is reported as a warning rather than an error.
func checkPresetTemperature(p scenario.Preset, r *Report) {
	res := climate.RegionalTemperatures(p.Inputs(sanitySeason, sanityTimeScaleYears))

	for _, b := range res.Bands {
		if b.CalculationError {
			r.AddError(Result{
				Level:   LevelSanity,
				Check:   "temperature-sanity",
				Preset:  p.Name,
				Message: fmt.Sprintf("%s: band %s failed to evaluate (%s)", p.Name, b.Name, b.FallbackReason),
			})
			return
		}
	}

	if p.ExpectedTemp.Contains(res.GlobalTemperatureC) {
		r.AddInfo(Result{
			Level:   LevelSanity,
			Check:   "temperature-sanity",
			Preset:  p.Name,
			Message: fmt.Sprintf("%s: global mean %.2f °C within expected window", p.Name, res.GlobalTemperatureC),
		})
		return
	}

	r.AddWarning(Result{
		Level:       LevelSanity,
		Check:       "temperature-sanity",
		Preset:      p.Name,
		Message:     fmt.Sprintf("%s: global mean %.2f °C outside expected window", p.Name, res.GlobalTemperatureC),
		ActualValue: res.GlobalTemperatureC,
		Expected:    fmt.Sprintf("[%.1f, %.1f] °C", p.ExpectedTemp.MinC, p.ExpectedTemp.MaxC),
	})
}

func checkForcingMonotonicity(r *Report) {
	prev := forcing.CO2(co2MonotonicitySeries[0])
	for _, ppm := range co2MonotonicitySeries[1:] {
		f := forcing.CO2(ppm)
		if f <= prev {
			r.AddError(Result{
				Level:       LevelPhysics,
				Check:       "co2-forcing-monotonicity",
				Parameter:   "co2_ppm",
				Message:     fmt.Sprintf("forcing not strictly increasing at %.0f ppm", ppm),
				ActualValue: f,
				Expected:    fmt.Sprintf("> %.4f W/m²", prev),
			})
			return
		}
		prev = f
	}
	r.AddInfo(Result{
		Level:   LevelPhysics,
		Check:   "co2-forcing-monotonicity",
		Message: "CO₂ forcing strictly increasing across 180-1500 ppm",
	})
}

// checkInsolationPattern verifies the 65°N summer/winter insolation
// contrast under the present-day orbit. The reference baseline keeps
// precession 0, so this check uses today's longitude of perihelion.
func checkInsolationPattern(r *Report) {
	presentDay := orbit.State{
		Eccentricity:  orbit.Baseline.Eccentricity,
		TiltDeg:       orbit.Baseline.TiltDeg,
		PrecessionDeg: orbit.PresentDayPrecession,
	}

	summer := insolation.Daily(65, 0.25, presentDay)
	winter := insolation.Daily(65, 0.75, presentDay)

	if summer <= winter {
		r.AddError(Result{
			Level:       LevelPhysics,
			Check:       "insolation-pattern",
			Parameter:   "latitude=65",
			Message:     "65°N summer insolation does not exceed winter insolation",
			ActualValue: fmt.Sprintf("summer %.1f vs winter %.1f W/m²", summer, winter),
			Expected:    "summer > winter",
		})
		return
	}
	r.AddInfo(Result{
		Level:   LevelPhysics,
		Check:   "insolation-pattern",
		Message: fmt.Sprintf("65°N insolation contrast: %.1f W/m² summer vs %.1f W/m² winter", summer, winter),
	})
}
