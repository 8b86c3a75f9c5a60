package climate

import (
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/feedback"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/forcing"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/insolation"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/numeric"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/response"
)

// Temperature bounds in °C. The solver never reports outside them.
const (
	MinTemperatureC = -60.0
	MaxTemperatureC = 60.0
)

// insolationGain converts a normalized insolation anomaly into a
// temperature effect, °C per unit fractional change.
const insolationGain = 10.0

// Effects is the decomposition of a point temperature into its
// physical contributions, all in °C. Reported values are post
// time-response attenuation.
type Effects struct {
	Insolation float64 `json:"insolation"`
	CO2        float64 `json:"co2"`
	WaterVapor float64 `json:"water_vapor"`
	Cloud      float64 `json:"cloud"`
	IceAlbedo  float64 `json:"ice_albedo"`
	Seasonal   float64 `json:"seasonal"`
	Offset     float64 `json:"offset"`
}

// PointResult is the outcome of a single-latitude evaluation.
// CalculationError marks a fallback result produced from non-finite
// inputs or intermediates; the fields are still complete and finite.
type PointResult struct {
	TemperatureC     float64     `json:"temperature"`
	IceFactor        float64     `json:"ice_factor"`
	BaseTemperatureC float64     `json:"base_temperature"`
	Effects          Effects     `json:"effects"`
	SensitivityUsed  Sensitivity `json:"sensitivity_used"`
	TimeScaleApplied bool        `json:"time_scale_applied"`
	CalculationError bool        `json:"calculation_error,omitempty"`
	FallbackReason   string      `json:"fallback_reason,omitempty"`
}

// PointTemperature evaluates the climate response model at a single
// latitude. It never panics and always returns a complete, finite
// result; exceptional inputs produce a fallback with CalculationError
// set.
func PointTemperature(in Inputs) PointResult {
	sens := in.Sensitivity
	if sens == "" {
		sens = SensitivityMedium
	}

	if reason := nonFiniteInput(in); reason != "" {
		return fallbackPoint(in.LatitudeDeg, sens, reason)
	}

	base := feedback.BaselineTemperature(in.LatitudeDeg)

	q := insolation.Daily(in.LatitudeDeg, in.Season, in.Orbit)
	qBase := insolation.Baseline(in.LatitudeDeg, in.Season)
	var insolationEffect float64
	if qBase > 1e-3 {
		insolationEffect = insolationGain * numeric.SafeDiv(q-qBase, qBase, 0)
	}

	co2Effect := sens.DegreesPerWm2() * forcing.CO2(in.Atmosphere.CO2ppm)
	waterVaporEffect := feedback.WaterVaporGain * co2Effect
	cloudEffect := feedback.CloudGain * co2Effect

	// Ice responds to the greenhouse-adjusted temperature before the
	// seasonal overlay, so seasonal snow does not feed the albedo loop.
	preliminary := base + insolationEffect + co2Effect + waterVaporEffect + cloudEffect
	iceFactor := feedback.IceFraction(preliminary, in.LatitudeDeg)
	iceAlbedoEffect := -feedback.AlbedoResponse(in.LatitudeDeg) * iceFactor

	seasonalEffect := feedback.SeasonalVariation(in.LatitudeDeg, in.Season)

	applied := in.TimeScaleYears > 0
	if applied {
		fast := response.Attenuation(in.TimeScaleYears, response.TauAtmosphereYears)
		slow := response.Attenuation(in.TimeScaleYears, response.TauIceSheetYears)
		co2Effect *= fast
		waterVaporEffect *= fast
		cloudEffect *= fast
		iceAlbedoEffect *= slow
	}

	temp := base + insolationEffect + co2Effect + waterVaporEffect +
		cloudEffect + iceAlbedoEffect + seasonalEffect + in.TempOffsetC

	if !numeric.IsFinite(temp) {
		return fallbackPoint(in.LatitudeDeg, sens, "non-finite temperature")
	}

	return PointResult{
		TemperatureC:     numeric.Clamp(temp, MinTemperatureC, MaxTemperatureC),
		IceFactor:        numeric.Clamp01(iceFactor),
		BaseTemperatureC: base,
		Effects: Effects{
			Insolation: insolationEffect,
			CO2:        co2Effect,
			WaterVapor: waterVaporEffect,
			Cloud:      cloudEffect,
			IceAlbedo:  iceAlbedoEffect,
			Seasonal:   seasonalEffect,
			Offset:     in.TempOffsetC,
		},
		SensitivityUsed:  sens,
		TimeScaleApplied: applied,
	}
}

// nonFiniteInput names the first non-finite numeric field, or returns
// "" when the record is clean.
func nonFiniteInput(in Inputs) string {
	checks := []struct {
		name string
		v    float64
	}{
		{"eccentricity", in.Orbit.Eccentricity},
		{"axial_tilt", in.Orbit.TiltDeg},
		{"precession", in.Orbit.PrecessionDeg},
		{"co2_ppm", in.Atmosphere.CO2ppm},
		{"latitude", in.LatitudeDeg},
		{"season", in.Season},
		{"temp_offset", in.TempOffsetC},
		{"time_scale_years", in.TimeScaleYears},
	}
	for _, c := range checks {
		if !numeric.IsFinite(c.v) {
			return "non-finite " + c.name
		}
	}
	return ""
}

// fallbackPoint builds the safe result used when an evaluation cannot
// be trusted: the baseline temperature, heavy ice at high latitudes,
// and zeroed effects.
func fallbackPoint(latDeg float64, sens Sensitivity, reason string) PointResult {
	base := feedback.BaselineTemperature(latDeg)

	ice := 0.0
	if numeric.IsFinite(latDeg) && (latDeg > 60 || latDeg < -60) {
		ice = 0.8
	}

	return PointResult{
		TemperatureC:     base,
		IceFactor:        ice,
		BaseTemperatureC: base,
		SensitivityUsed:  sens,
		CalculationError: true,
		FallbackReason:   reason,
	}
}
