// Package forcing computes radiative forcing in W/m² for greenhouse
// gases and aerosols relative to preindustrial reference levels.
package forcing

import (
	"math"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/numeric"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/orbit"
)

// Preindustrial reference concentrations.
const (
	BaselineCO2ppm = 280.0
	BaselineCH4ppb = 700.0
	BaselineN2Oppb = 270.0
)

// co2ScalingFactor is the standard logarithmic CO₂ forcing coefficient
// (Myhre et al.), W/m² per e-folding of concentration.
const co2ScalingFactor = 5.35

// CO2 returns the radiative forcing of a CO₂ concentration in ppm.
// Concentrations below 1 ppm are floored so the logarithm stays finite.
func CO2(ppm float64) float64 {
	return co2ScalingFactor * numeric.SafeLog(math.Max(1, ppm)/BaselineCO2ppm, 1e-12)
}

// Methane returns the radiative forcing of a CH₄ concentration in ppb.
func Methane(ppb float64) float64 {
	return 0.036 * (math.Sqrt(math.Max(1, ppb)) - math.Sqrt(BaselineCH4ppb))
}

// NitrousOxide returns the radiative forcing of an N₂O concentration in ppb.
func NitrousOxide(ppb float64) float64 {
	return 0.12 * (math.Sqrt(math.Max(1, ppb)) - math.Sqrt(BaselineN2Oppb))
}

// Aerosol returns the (negative) radiative forcing of an aerosol
// optical depth. Both the direct and an approximate indirect effect
// are included.
func Aerosol(opticalDepth float64) float64 {
	if opticalDepth <= 0 || !numeric.IsFinite(opticalDepth) {
		return 0
	}
	return -25*opticalDepth - 0.7*math.Log(1+10*opticalDepth)
}

// Total sums the forcing of every modeled constituent. CH₄ and N₂O
// contribute only when set; zero means "not modeled".
func Total(a orbit.Atmosphere) float64 {
	f := CO2(a.CO2ppm)
	if a.CH4ppb > 0 {
		f += Methane(a.CH4ppb)
	}
	if a.N2Oppb > 0 {
		f += NitrousOxide(a.N2Oppb)
	}
	f += Aerosol(a.AerosolOD)
	return f
}
