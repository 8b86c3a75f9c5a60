package climate

import "github.com/mrgreenish/milankovic-cycles-sub000/pkg/numeric"

// NormalizeTemperature maps a temperature onto [0, 1] over the given
// range, for color scales in the renderer. Degenerate ranges and
// non-finite temperatures map to the midpoint.
func NormalizeTemperature(tempC, minC, maxC float64) float64 {
	if !numeric.IsFinite(tempC) || maxC <= minC {
		return 0.5
	}
	return numeric.Clamp01((tempC - minC) / (maxC - minC))
}

// NormalizeTemperatureDefault uses the display range [-30, 30] °C.
func NormalizeTemperatureDefault(tempC float64) float64 {
	return NormalizeTemperature(tempC, -30, 30)
}

// SmoothTemperature moves current toward target by fraction alpha,
// used for animation easing. A non-finite target leaves current
// unchanged; a non-finite current snaps to the target.
func SmoothTemperature(current, target, alpha float64) float64 {
	if !numeric.IsFinite(target) {
		return numeric.FiniteOr(current, 0)
	}
	if !numeric.IsFinite(current) {
		return target
	}
	alpha = numeric.Clamp01(numeric.FiniteOr(alpha, 0.5))
	return current + alpha*(target-current)
}
