package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/climate"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/scenario"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/validation"
)

// modelFlags maps CLI flags onto a climate input record. Preset and
// scenario file are applied first, explicit flags win.
type modelFlags struct {
	latitude    float64
	season      float64
	ecc         float64
	tilt        float64
	precession  float64
	co2         float64
	ch4         float64
	n2o         float64
	aerosolOD   float64
	tempOffset  float64
	timeScale   float64
	sensitivity string
	preset      string
	scenario    string

	cmd *cobra.Command
}

func (f *modelFlags) register(cmd *cobra.Command, withLatitude bool) {
	defaults := climate.DefaultInputs()

	if withLatitude {
		cmd.Flags().Float64Var(&f.latitude, "lat", defaults.LatitudeDeg, "latitude in degrees")
	}
	cmd.Flags().Float64Var(&f.season, "season", 0, "season in [0, 1)")
	cmd.Flags().Float64Var(&f.ecc, "e", defaults.Orbit.Eccentricity, "orbital eccentricity")
	cmd.Flags().Float64Var(&f.tilt, "tilt", defaults.Orbit.TiltDeg, "axial tilt in degrees")
	cmd.Flags().Float64Var(&f.precession, "prec", defaults.Orbit.PrecessionDeg, "precession in degrees")
	cmd.Flags().Float64Var(&f.co2, "co2", defaults.Atmosphere.CO2ppm, "CO₂ concentration in ppm")
	cmd.Flags().Float64Var(&f.ch4, "ch4", 0, "CH₄ concentration in ppb (0 = not modeled)")
	cmd.Flags().Float64Var(&f.n2o, "n2o", 0, "N₂O concentration in ppb (0 = not modeled)")
	cmd.Flags().Float64Var(&f.aerosolOD, "aod", 0, "aerosol optical depth")
	cmd.Flags().Float64Var(&f.tempOffset, "offset", 0, "temperature offset in °C")
	cmd.Flags().Float64Var(&f.timeScale, "timescale", 0, "simulated years (0 = equilibrium)")
	cmd.Flags().StringVar(&f.sensitivity, "sensitivity", string(climate.SensitivityMedium), "low, medium, or high")
	cmd.Flags().StringVar(&f.preset, "preset", "", "start from a named preset")
	cmd.Flags().StringVar(&f.scenario, "scenario", "", "start from a scenario YAML file")

	f.cmd = cmd
}

// inputs resolves flags, preset, and scenario file into an input
// record. Precedence: defaults < preset < scenario file < explicit
// flags.
func (f *modelFlags) inputs() (climate.Inputs, error) {
	in := climate.DefaultInputs()

	if f.preset != "" {
		p, err := scenario.ByName(f.preset)
		if err != nil {
			return in, err
		}
		in.Orbit = p.Orbit
		in.Atmosphere.CO2ppm = p.CO2ppm
	}

	if f.scenario != "" {
		sc, err := scenario.Load(f.scenario)
		if err != nil {
			return in, fmt.Errorf("loading scenario: %w", err)
		}
		in = sc.Apply(in)
	}

	flags := f.cmd.Flags()
	apply := func(name string, dst *float64, v float64) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	apply("lat", &in.LatitudeDeg, f.latitude)
	apply("season", &in.Season, f.season)
	apply("e", &in.Orbit.Eccentricity, f.ecc)
	apply("tilt", &in.Orbit.TiltDeg, f.tilt)
	apply("prec", &in.Orbit.PrecessionDeg, f.precession)
	apply("co2", &in.Atmosphere.CO2ppm, f.co2)
	apply("ch4", &in.Atmosphere.CH4ppb, f.ch4)
	apply("n2o", &in.Atmosphere.N2Oppb, f.n2o)
	apply("aod", &in.Atmosphere.AerosolOD, f.aerosolOD)
	apply("offset", &in.TempOffsetC, f.tempOffset)
	apply("timescale", &in.TimeScaleYears, f.timeScale)

	if flags.Changed("sensitivity") {
		in.Sensitivity = climate.ParseSensitivity(f.sensitivity)
	}
	return in, nil
}

func runPoint(f *modelFlags, asJSON bool) error {
	in, err := f.inputs()
	if err != nil {
		return err
	}

	result := climate.PointTemperature(in)
	if asJSON {
		return emitJSON(result)
	}
	printPointResult(in, result)
	return nil
}

func runRegion(f *modelFlags, asJSON bool) error {
	in, err := f.inputs()
	if err != nil {
		return err
	}

	result := climate.RegionalTemperatures(in)
	if asJSON {
		return emitJSON(result)
	}
	printRegionResult(in, result)
	return nil
}

func runValidate() error {
	report := validation.ValidatePresets()
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
