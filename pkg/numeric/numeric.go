// Package numeric provides the small float guards used throughout the
// climate kernels. Every kernel applies these uniformly instead of
// guarding NaN/Infinity ad hoc at each operation.
package numeric

import "math"

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FiniteOr returns v if it is finite, otherwise fallback.
func FiniteOr(v, fallback float64) float64 {
	if IsFinite(v) {
		return v
	}
	return fallback
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// SafeLog returns ln(v) with v floored at minArg, so the argument is
// always positive.
func SafeLog(v, minArg float64) float64 {
	if v < minArg {
		v = minArg
	}
	return math.Log(v)
}

// SafeDiv returns num/den, or fallback when den is too close to zero
// or the quotient is not finite.
func SafeDiv(num, den, fallback float64) float64 {
	if math.Abs(den) < 1e-12 {
		return fallback
	}
	return FiniteOr(num/den, fallback)
}

// SafeAcos clamps the argument to [-1, 1] before taking the arccosine.
// Near-polar latitudes can push the hour-angle argument just outside
// the domain through rounding.
func SafeAcos(v float64) float64 {
	return math.Acos(Clamp(v, -1, 1))
}
