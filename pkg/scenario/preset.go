// Package scenario carries the paleoclimate preset catalog, the
// scientifically accepted parameter ranges, and loading of custom
// scenario files.
package scenario

import (
	"fmt"
	"strings"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/orbit"
)

// TempRange is an expected global-mean temperature window in °C.
type TempRange struct {
	MinC float64 `json:"min" yaml:"min"`
	MaxC float64 `json:"max" yaml:"max"`
}

// Contains reports whether t lies inside the window.
func (r TempRange) Contains(t float64) bool {
	return t >= r.MinC && t <= r.MaxC
}

// Preset is a named paleoclimate configuration. Year is relative to
// present: negative before present, positive after.
type Preset struct {
	Name         string      `json:"name" yaml:"name"`
	Orbit        orbit.State `json:"orbit" yaml:"orbit"`
	CO2ppm       float64     `json:"co2_ppm" yaml:"co2_ppm"`
	Year         float64     `json:"year" yaml:"year"`
	ExpectedTemp TempRange   `json:"expected_temp" yaml:"expected_temp"`
	Description  string      `json:"description" yaml:"description"`
}

// Presets is the catalog, ordered oldest configuration last.
var Presets = []Preset{
	{
		Name:         "LGM",
		Orbit:        orbit.State{Eccentricity: 0.019, TiltDeg: 22.99, PrecessionDeg: 114},
		CO2ppm:       180,
		Year:         -21_000,
		ExpectedTemp: TempRange{MinC: -6, MaxC: -2},
		Description:  "Last Glacial Maximum, 21 kyr before present",
	},
	{
		Name:         "Mid-Holocene",
		Orbit:        orbit.State{Eccentricity: 0.0187, TiltDeg: 24.1, PrecessionDeg: 303},
		CO2ppm:       265,
		Year:         -6_000,
		ExpectedTemp: TempRange{MinC: 14, MaxC: 16},
		Description:  "Holocene climatic optimum, 6 kyr before present",
	},
	{
		Name:         "MPT",
		Orbit:        orbit.State{Eccentricity: 0.043, TiltDeg: 22.3, PrecessionDeg: 275},
		CO2ppm:       240,
		Year:         -800_000,
		ExpectedTemp: TempRange{MinC: 8, MaxC: 12},
		Description:  "Mid-Pleistocene Transition, 800 kyr before present",
	},
	{
		Name:         "PETM",
		Orbit:        orbit.State{Eccentricity: 0.052, TiltDeg: 23.8, PrecessionDeg: 180},
		CO2ppm:       1500,
		Year:         -56_000_000,
		ExpectedTemp: TempRange{MinC: 22, MaxC: 28},
		Description:  "Paleocene-Eocene Thermal Maximum, 56 Myr before present",
	},
	{
		Name:         "Future",
		Orbit:        orbit.State{Eccentricity: 0.015, TiltDeg: 23.2, PrecessionDeg: 90},
		CO2ppm:       280,
		Year:         50_000,
		ExpectedTemp: TempRange{MinC: 10, MaxC: 14},
		Description:  "Projected orbital configuration, 50 kyr after present",
	},
}

// ByName returns the preset with the given name, case-insensitively.
func ByName(name string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}
