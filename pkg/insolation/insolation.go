// Package insolation computes daily-mean top-of-atmosphere insolation
// for a latitude, season, and orbital configuration.
package insolation

import (
	"math"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/numeric"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/orbit"
)

// SolarConstant is the total solar irradiance in W/m².
const SolarConstant = 1361.0

const (
	// polarLatitude is the |latitude| at which the simplified polar
	// formulation takes over from the general kernel.
	polarLatitude = 89.0

	// minOrbitalRadius floors the orbital radius so near-parabolic
	// eccentricities cannot divide by zero.
	minOrbitalRadius = 1e-3
)

// Daily returns the daily-mean top-of-atmosphere insolation in W/m² at
// latitude latDeg for season s in [0, 1), under the given orbit.
// Season 0 is the northern winter solstice reference point of the
// seasonal cycle; the orbital position is theta = 2*pi*s + precession.
//
// The solar declination uses sin(theta + precession + pi), so the
// precession offset enters twice. This reproduces the behaviour of the
// original visualization model and is kept deliberately; with
// precession 0 the declination cycle is phase-shifted by half a year
// relative to the intuitive season labels.
//
// The result is always finite and non-negative.
func Daily(latDeg, season float64, st orbit.State) float64 {
	st = st.Normalized()
	s := wrapSeason(season)

	if math.Abs(latDeg) >= polarLatitude {
		return polar(latDeg, s, st)
	}

	phi := latDeg * math.Pi / 180
	eps := st.TiltDeg * math.Pi / 180
	prec := st.PrecessionDeg * math.Pi / 180
	e := st.Eccentricity

	theta := 2*math.Pi*s + prec

	r := (1 - e*e) / (1 + e*math.Cos(theta))
	if r < minOrbitalRadius {
		r = minOrbitalRadius
	}

	decl := math.Asin(math.Sin(eps) * math.Sin(theta+prec+math.Pi))
	hourAngle := numeric.SafeAcos(-math.Tan(phi) * math.Tan(decl))

	q := (SolarConstant / (math.Pi * r * r)) *
		(hourAngle*math.Sin(phi)*math.Sin(decl) +
			math.Cos(phi)*math.Cos(decl)*math.Sin(hourAngle))

	if !numeric.IsFinite(q) {
		return 0
	}
	if q < 0 {
		return 0
	}
	return q
}

// Baseline returns the insolation under the reference orbit
// (e = 0.0167, tilt = 23.44°, precession = 0).
func Baseline(latDeg, season float64) float64 {
	return Daily(latDeg, season, orbit.Baseline)
}

// polar is the simplified formulation for |latitude| >= 89°. During
// the hemispheric dark season the pole receives nothing; during the
// lit season the flux is the tilted quarter-constant scaled by the
// orbital distance factor.
func polar(latDeg, s float64, st orbit.State) float64 {
	north := latDeg >= 0

	var dark bool
	if north {
		dark = s < 0.2 || s >= 0.7
	} else {
		dark = s >= 0.2 && s < 0.7
	}
	if dark {
		return 0
	}

	eps := st.TiltDeg * math.Pi / 180
	q := SolarConstant / 4 * math.Sin(eps) *
		(1 + st.Eccentricity*math.Sin(math.Pi*(s-0.25)))

	if !numeric.IsFinite(q) || q < 0 {
		return 0
	}
	return q
}

func wrapSeason(s float64) float64 {
	if !numeric.IsFinite(s) {
		return 0
	}
	s = math.Mod(s, 1)
	if s < 0 {
		s++
	}
	return s
}
