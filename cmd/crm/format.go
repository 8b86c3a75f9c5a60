package main

import (
	"fmt"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/climate"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/forcing"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/scenario"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/validation"
)

func printPointResult(in climate.Inputs, r climate.PointResult) {
	fmt.Printf("Latitude %.2f°, season %.2f, CO₂ %.0f ppm, sensitivity %s\n",
		in.LatitudeDeg, in.Season, in.Atmosphere.CO2ppm, r.SensitivityUsed)
	if in.TimeScaleYears > 0 {
		fmt.Printf("Time scale: %.0f years\n", in.TimeScaleYears)
	}
	fmt.Println()

	fmt.Printf("  Temperature:        %7.2f °C\n", r.TemperatureC)
	fmt.Printf("  Baseline:           %7.2f °C\n", r.BaseTemperatureC)
	fmt.Printf("  Ice fraction:       %7.2f\n", r.IceFactor)
	fmt.Println()

	fmt.Println("Contributions (°C)")
	fmt.Printf("  insolation:  %7.2f\n", r.Effects.Insolation)
	fmt.Printf("  co2:         %7.2f\n", r.Effects.CO2)
	fmt.Printf("  water vapor: %7.2f\n", r.Effects.WaterVapor)
	fmt.Printf("  cloud:       %7.2f\n", r.Effects.Cloud)
	fmt.Printf("  ice-albedo:  %7.2f\n", r.Effects.IceAlbedo)
	fmt.Printf("  seasonal:    %7.2f\n", r.Effects.Seasonal)
	fmt.Printf("  offset:      %7.2f\n", r.Effects.Offset)

	if total := forcing.Total(in.Atmosphere); in.Atmosphere.CH4ppb > 0 ||
		in.Atmosphere.N2Oppb > 0 || in.Atmosphere.AerosolOD > 0 {
		fmt.Printf("\nTotal radiative forcing: %.2f W/m²\n", total)
	}

	if r.CalculationError {
		fmt.Printf("\nWARNING: fallback result (%s)\n", r.FallbackReason)
	}
}

func printRegionResult(in climate.Inputs, r climate.RegionResult) {
	fmt.Printf("Season %.2f, CO₂ %.0f ppm, sensitivity %s\n",
		in.Season, in.Atmosphere.CO2ppm, in.Sensitivity)
	fmt.Println()

	fmt.Printf("%-26s %9s %9s %6s %6s\n", "Band", "Lat", "Temp °C", "Ice", "Wt")
	for _, b := range r.Bands {
		marker := ""
		if b.CalculationError {
			marker = "  !"
		}
		fmt.Printf("%-26s %8.0f° %9.2f %6.2f %6.2f%s\n",
			b.Name, b.LatitudeDeg, b.TemperatureC, b.IceFactor, b.Weight, marker)
	}

	fmt.Println()
	fmt.Printf("Global mean: %.2f °C\n", r.GlobalTemperatureC)
}

func printPresets() {
	fmt.Printf("%-14s %8s %7s %7s %8s %13s %14s\n",
		"Name", "Ecc", "Tilt", "Prec", "CO₂", "Year", "Expected °C")
	for _, p := range scenario.Presets {
		fmt.Printf("%-14s %8.4f %6.2f° %6.0f° %7.0f %13.0f [%.0f, %.0f]\n",
			p.Name, p.Orbit.Eccentricity, p.Orbit.TiltDeg, p.Orbit.PrecessionDeg,
			p.CO2ppm, p.Year, p.ExpectedTemp.MinC, p.ExpectedTemp.MaxC)
	}
}

func printValidationReport(r *validation.Report) {
	for _, res := range r.Info {
		fmt.Printf("  ok   [%s] %s\n", res.Level, res.Message)
	}
	for _, res := range r.Warnings {
		fmt.Printf("  warn [%s] %s\n", res.Level, res.Message)
		if res.Expected != "" {
			fmt.Printf("         expected: %s\n", res.Expected)
		}
	}
	for _, res := range r.Errors {
		fmt.Printf("  FAIL [%s] %s\n", res.Level, res.Message)
		if res.Expected != "" {
			fmt.Printf("         expected: %s\n", res.Expected)
		}
	}

	fmt.Println()
	if r.Valid {
		fmt.Printf("Result: PASS (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: FAIL (%s)\n", r.Summary)
	}
}
