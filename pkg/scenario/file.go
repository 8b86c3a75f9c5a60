package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/climate"
)

// File is a user-supplied scenario: optional overrides applied on top
// of the model defaults. Absent fields keep their defaults.
type File struct {
	Name string `yaml:"name"`

	Orbit struct {
		Eccentricity *float64 `yaml:"eccentricity"`
		AxialTilt    *float64 `yaml:"axial_tilt"`
		Precession   *float64 `yaml:"precession"`
	} `yaml:"orbit"`

	Atmosphere struct {
		CO2ppm    *float64 `yaml:"co2_ppm"`
		CH4ppb    *float64 `yaml:"ch4_ppb"`
		N2Oppb    *float64 `yaml:"n2o_ppb"`
		AerosolOD *float64 `yaml:"aerosol_od"`
	} `yaml:"atmosphere"`

	Latitude       *float64 `yaml:"latitude"`
	Season         *float64 `yaml:"season"`
	TempOffset     *float64 `yaml:"temp_offset"`
	TimeScaleYears *float64 `yaml:"time_scale_years"`
	Sensitivity    string   `yaml:"sensitivity"`
}

// Load reads a scenario file from a YAML path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	return &f, nil
}

// Apply overlays the scenario onto a base input record.
func (f *File) Apply(in climate.Inputs) climate.Inputs {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	set(&in.Orbit.Eccentricity, f.Orbit.Eccentricity)
	set(&in.Orbit.TiltDeg, f.Orbit.AxialTilt)
	set(&in.Orbit.PrecessionDeg, f.Orbit.Precession)
	set(&in.Atmosphere.CO2ppm, f.Atmosphere.CO2ppm)
	set(&in.Atmosphere.CH4ppb, f.Atmosphere.CH4ppb)
	set(&in.Atmosphere.N2Oppb, f.Atmosphere.N2Oppb)
	set(&in.Atmosphere.AerosolOD, f.Atmosphere.AerosolOD)
	set(&in.LatitudeDeg, f.Latitude)
	set(&in.Season, f.Season)
	set(&in.TempOffsetC, f.TempOffset)
	set(&in.TimeScaleYears, f.TimeScaleYears)

	if f.Sensitivity != "" {
		in.Sensitivity = climate.ParseSensitivity(f.Sensitivity)
	}
	return in
}

// Inputs converts a preset into an input record for the regional
// aggregator, with the season and time scale chosen by the caller.
func (p Preset) Inputs(season, timeScaleYears float64) climate.Inputs {
	in := climate.DefaultInputs()
	in.Orbit = p.Orbit
	in.Atmosphere.CO2ppm = p.CO2ppm
	in.Season = season
	in.TimeScaleYears = timeScaleYears
	return in
}
