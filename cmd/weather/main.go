package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/MiguelElGallo/snapshottest/pkg/config"
	"github.com/MiguelElGallo/snapshottest/pkg/report"
)

var (
	configFile string
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show the current weather at your location",
	Long: `Looks up where this machine is via ip-api.com, fetches the current
conditions there from Open-Meteo and prints a small weather report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReport,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Emit the report as JSON")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("Geolocation endpoint: %s", cfg.Geolocation.Endpoint)
		log.Printf("Weather endpoint: %s", cfg.Weather.Endpoint)
	}

	result, err := report.NewBuilder(cfg).Build(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), renderReport(result))
	return nil
}
