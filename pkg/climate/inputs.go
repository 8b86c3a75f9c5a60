package climate

import "github.com/mrgreenish/milankovic-cycles-sub000/pkg/orbit"

// Sensitivity selects the equilibrium climate sensitivity used to
// convert radiative forcing into a temperature effect.
type Sensitivity string

const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
)

// DegreesPerWm2 returns the sensitivity in °C per W/m². Unknown values
// resolve to medium.
func (s Sensitivity) DegreesPerWm2() float64 {
	switch s {
	case SensitivityLow:
		return 0.5
	case SensitivityHigh:
		return 1.0
	default:
		return 0.75
	}
}

// ParseSensitivity maps a string onto a Sensitivity, defaulting to
// medium for anything unrecognized.
func ParseSensitivity(s string) Sensitivity {
	switch Sensitivity(s) {
	case SensitivityLow, SensitivityMedium, SensitivityHigh:
		return Sensitivity(s)
	default:
		return SensitivityMedium
	}
}

// Inputs is the full input record for a point evaluation. Regional
// evaluation uses the same record and substitutes each band latitude.
type Inputs struct {
	Orbit      orbit.State      `json:"orbit" yaml:"orbit"`
	Atmosphere orbit.Atmosphere `json:"atmosphere" yaml:"atmosphere"`

	LatitudeDeg float64 `json:"latitude" yaml:"latitude"`
	Season      float64 `json:"season" yaml:"season"`

	// TempOffsetC is an exogenous adjustment added to the final
	// temperature, used by the UI for what-if shifts.
	TempOffsetC float64 `json:"temp_offset" yaml:"temp_offset"`

	// TimeScaleYears is the simulated elapsed time. Zero means
	// equilibrium; positive values attenuate the slow feedbacks.
	TimeScaleYears float64 `json:"time_scale_years" yaml:"time_scale_years"`

	Sensitivity Sensitivity `json:"sensitivity" yaml:"sensitivity"`
}

// DefaultInputs returns the defaults used when the caller leaves a
// field unset: present-day orbit and CO₂ at the reference latitude of
// the original visualization (Amsterdam).
func DefaultInputs() Inputs {
	return Inputs{
		Orbit:       orbit.Baseline,
		Atmosphere:  orbit.Atmosphere{CO2ppm: 280},
		LatitudeDeg: 52.37,
		Season:      0,
		Sensitivity: SensitivityMedium,
	}
}
