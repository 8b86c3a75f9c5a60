// Package orbit defines Earth's orbital configuration and atmospheric
// composition records consumed by the climate response model.
package orbit

import "math"

// State is an orbital triple. Angles are in degrees.
type State struct {
	Eccentricity  float64 `json:"eccentricity" yaml:"eccentricity"`
	TiltDeg       float64 `json:"axial_tilt" yaml:"axial_tilt"`
	PrecessionDeg float64 `json:"precession" yaml:"precession"`
}

// Baseline is the reference orbit used for insolation anomalies.
// Precession 0 is the reference direction, not today's longitude of
// perihelion; see PresentDayPrecession.
var Baseline = State{
	Eccentricity:  0.0167,
	TiltDeg:       23.44,
	PrecessionDeg: 0,
}

// PresentDayPrecession is today's longitude of perihelion in degrees.
const PresentDayPrecession = 102.9

// Normalized returns the state with precession wrapped to [0, 360).
func (s State) Normalized() State {
	p := math.Mod(s.PrecessionDeg, 360)
	if p < 0 {
		p += 360
	}
	s.PrecessionDeg = p
	return s
}

// Atmosphere is the greenhouse-gas and aerosol composition. CH4, N2O
// and aerosol optical depth are optional extensions; zero values mean
// "not modeled" rather than a zero concentration.
type Atmosphere struct {
	CO2ppm    float64 `json:"co2_ppm" yaml:"co2_ppm"`
	CH4ppb    float64 `json:"ch4_ppb,omitempty" yaml:"ch4_ppb"`
	N2Oppb    float64 `json:"n2o_ppb,omitempty" yaml:"n2o_ppb"`
	AerosolOD float64 `json:"aerosol_od,omitempty" yaml:"aerosol_od"`
}
