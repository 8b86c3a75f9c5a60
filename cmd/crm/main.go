package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mrgreenish/milankovic-cycles-sub000/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crm",
		Short: "Milanković climate response model",
	}

	rootCmd.AddCommand(pointCmd())
	rootCmd.AddCommand(regionCmd())
	rootCmd.AddCommand(presetsCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func pointCmd() *cobra.Command {
	var f modelFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "point",
		Short: "Evaluate the temperature decomposition at one latitude",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPoint(&f, asJSON)
		},
	}
	f.register(cmd, true)
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	return cmd
}

func regionCmd() *cobra.Command {
	var f modelFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "region",
		Short: "Evaluate all latitude bands and the global mean",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runRegion(&f, asJSON)
		},
	}
	f.register(cmd, false)
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")
	return cmd
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the paleoclimate preset catalog",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			printPresets()
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check presets against paleoclimatic ranges and model physics",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runValidate()
		},
	}
}

func exportCmd() *cobra.Command {
	var f modelFlags
	var out, format string
	var seasons int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write season/latitude and CO₂ sweeps to CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runExport(&f, out, format, seasons)
		},
	}
	f.register(cmd, false)
	cmd.Flags().StringVarP(&out, "out", "o", "sweep.csv", "output file path")
	cmd.Flags().StringVar(&format, "format", "", "csv or xlsx (defaults from the extension)")
	cmd.Flags().IntVar(&seasons, "seasons", 24, "season samples per band")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API consumed by the web renderer",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return server.New(port).Start()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
