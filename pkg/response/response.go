// Package response models how fast each climate subsystem approaches
// its equilibrium: a first-order relaxation per process.
package response

import (
	"math"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/numeric"
)

// Process time constants in years.
const (
	TauAtmosphereYears = 1.0
	TauOceanYears      = 500.0
	TauIceSheetYears   = 5000.0
)

// Attenuation returns the fraction of the equilibrium response reached
// after simYears of a process with time constant processYears:
// 1 − exp(−τ_sim/τ_process). A simulation span of 0 means the caller
// asked for equilibrium, so the factor is 1.
func Attenuation(simYears, processYears float64) float64 {
	if simYears <= 0 || !numeric.IsFinite(simYears) {
		return 1
	}
	if processYears <= 0 || !numeric.IsFinite(processYears) {
		return 1
	}
	return 1 - math.Exp(-simYears/processYears)
}
