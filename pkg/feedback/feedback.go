// Package feedback holds the climate feedback parameterizations: the
// baseline temperature table, the ice-cover logistic, the seasonal
// overlay, and the amplifier gains applied to greenhouse warming.
package feedback

import (
	"math"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/numeric"
)

// Amplifier gains relative to the direct CO₂ temperature effect.
const (
	WaterVaporGain = 0.6
	CloudGain      = 0.1
)

// Ice-albedo response strength in °C per unit ice fraction,
// interpolated with sin²(latitude) between equator and pole.
const (
	AlbedoResponseEquator = 0.5
	AlbedoResponsePole    = 4.0
)

// SeasonalAmplitudeMax is the seasonal swing at the poles in °C.
const SeasonalAmplitudeMax = 20.0

// baselineRef is the reference temperature table, northern-hemisphere
// magnitudes. Southern latitudes add southernAdjustment (slightly
// milder because of the ocean fraction).
var baselineRef = []struct {
	latDeg float64
	tempC  float64
}{
	{0, 25},
	{30, 15},
	{65, -5},
	{90, -20},
}

const southernAdjustment = 1.0

// BaselineTemperature returns the reference surface temperature in °C
// at a latitude, using the nearest reference latitude by magnitude.
// Non-finite latitudes fall back to the 15 °C global mean.
func BaselineTemperature(latDeg float64) float64 {
	if !numeric.IsFinite(latDeg) {
		return 15
	}

	mag := math.Abs(latDeg)
	best := baselineRef[0]
	for _, ref := range baselineRef[1:] {
		if math.Abs(mag-ref.latDeg) < math.Abs(mag-best.latDeg) {
			best = ref
		}
	}

	t := best.tempC
	if latDeg < 0 {
		t += southernAdjustment
	}
	return t
}

// IceFraction returns the fractional ice cover in [0, 1] at surface
// temperature tempC and latitude latDeg. The freezing threshold is
// latitude dependent (2·cos φ); the transition is a logistic with a
// 1.5 °C width. The exponent is clamped so exp never overflows.
func IceFraction(tempC, latDeg float64) float64 {
	if !numeric.IsFinite(tempC) || !numeric.IsFinite(latDeg) {
		return 0.5
	}

	phi := latDeg * math.Pi / 180
	threshold := 2 * math.Cos(phi)

	arg := numeric.Clamp((tempC-threshold)/1.5, -50, 50)
	f := 1 / (1 + math.Exp(arg))
	return numeric.Clamp01(numeric.FiniteOr(f, 0.5))
}

// SeasonalVariation returns the seasonal temperature anomaly in °C at
// latitude latDeg and season s. Amplitude grows with sin|φ| toward the
// poles; the hemispheres are half a year out of phase (north −π/2,
// south +π/2). The amplitude vanishes at the equator, so the value is
// continuous there even though the phase flips sign.
func SeasonalVariation(latDeg, season float64) float64 {
	if !numeric.IsFinite(latDeg) || !numeric.IsFinite(season) {
		return 0
	}

	phi := latDeg * math.Pi / 180
	amplitude := SeasonalAmplitudeMax * math.Sin(math.Abs(phi))

	phase := -math.Pi / 2
	if latDeg < 0 {
		phase = math.Pi / 2
	}
	return amplitude * math.Sin(2*math.Pi*season+phase)
}

// AlbedoResponse returns the ice-albedo response strength in °C per
// unit ice fraction at a latitude.
func AlbedoResponse(latDeg float64) float64 {
	if !numeric.IsFinite(latDeg) {
		return AlbedoResponseEquator
	}
	sinPhi := math.Sin(latDeg * math.Pi / 180)
	return AlbedoResponseEquator +
		(AlbedoResponsePole-AlbedoResponseEquator)*sinPhi*sinPhi
}
