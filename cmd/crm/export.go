package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/climate"
	"github.com/mrgreenish/milankovic-cycles-sub000/pkg/sweep"
)

var exportCO2Series = []float64{180, 240, 280, 350, 420, 560, 800, 1120, 1500}

var sweepHeader = []string{"band", "latitude", "season", "temperature_c", "ice_fraction", "insolation_effect_c", "seasonal_effect_c"}

func runExport(f *modelFlags, out, format string, seasons int) error {
	in, err := f.inputs()
	if err != nil {
		return err
	}

	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(out), ".")
	}

	cells := sweep.SeasonLatitude(in, seasons)
	co2 := sweep.CO2Series(in, exportCO2Series)

	switch strings.ToLower(format) {
	case "csv":
		return exportCSV(out, cells, co2)
	case "xlsx":
		return exportXLSX(out, cells, co2)
	default:
		return fmt.Errorf("unsupported export format %q (want csv or xlsx)", format)
	}
}

func sweepRow(c sweep.SeasonCell) []string {
	return []string{
		c.Band.Name,
		strconv.FormatFloat(c.Band.LatitudeDeg, 'f', 0, 64),
		strconv.FormatFloat(c.Season, 'f', 4, 64),
		strconv.FormatFloat(c.TemperatureC, 'f', 3, 64),
		strconv.FormatFloat(c.IceFactor, 'f', 3, 64),
		strconv.FormatFloat(c.InsolationC, 'f', 3, 64),
		strconv.FormatFloat(c.SeasonalC, 'f', 3, 64),
	}
}

// exportCSV writes the season sweep to out and the CO₂ series to a
// sibling file with a _co2 suffix.
func exportCSV(out string, cells []sweep.SeasonCell, co2 []sweep.CO2Point) error {
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(sweepHeader); err != nil {
		return err
	}
	for _, c := range cells {
		if err := w.Write(sweepRow(c)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	co2Path := strings.TrimSuffix(out, filepath.Ext(out)) + "_co2.csv"
	co2File, err := os.Create(co2Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", co2Path, err)
	}
	defer co2File.Close()

	cw := csv.NewWriter(co2File)
	if err := cw.Write([]string{"co2_ppm", "global_temperature_c"}); err != nil {
		return err
	}
	for _, p := range co2 {
		row := []string{
			strconv.FormatFloat(p.CO2ppm, 'f', 0, 64),
			strconv.FormatFloat(p.GlobalTemperatureC, 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	fmt.Printf("wrote %s and %s\n", out, co2Path)
	return cw.Error()
}

// exportXLSX writes both sweeps into one workbook, a sheet each.
func exportXLSX(out string, cells []sweep.SeasonCell, co2 []sweep.CO2Point) error {
	wb := excelize.NewFile()
	defer wb.Close()

	const sweepSheet = "SeasonSweep"
	wb.SetSheetName(wb.GetSheetName(0), sweepSheet)

	for col, h := range sweepHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		wb.SetCellValue(sweepSheet, cell, h)
	}
	for i, c := range cells {
		values := []any{
			c.Band.Name, c.Band.LatitudeDeg, c.Season,
			c.TemperatureC, c.IceFactor, c.InsolationC, c.SeasonalC,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			wb.SetCellValue(sweepSheet, cell, v)
		}
	}

	const co2Sheet = "CO2Series"
	if _, err := wb.NewSheet(co2Sheet); err != nil {
		return err
	}
	wb.SetCellValue(co2Sheet, "A1", "co2_ppm")
	wb.SetCellValue(co2Sheet, "B1", "global_temperature_c")
	for i, p := range co2 {
		wb.SetCellValue(co2Sheet, fmt.Sprintf("A%d", i+2), p.CO2ppm)
		wb.SetCellValue(co2Sheet, fmt.Sprintf("B%d", i+2), p.GlobalTemperatureC)
	}

	if err := wb.SaveAs(out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	fmt.Printf("wrote %s (%d sweep rows, %d CO₂ points, %d bands)\n",
		out, len(cells), len(co2), len(climate.Bands))
	return nil
}
