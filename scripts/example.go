package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/MiguelElGallo/snapshottest/pkg/models"
)

func main() {
	// Build a report by hand to show the data model without calling
	// either live API
	report := models.WeatherReport{
		Location: models.Location{
			Latitude:  37.7749,
			Longitude: -122.4194,
			City:      "San Francisco",
			Country:   "United States",
			Continent: "North America",
		},
		Weather: models.Weather{
			TemperatureC: 18.5,
			WeatherCode:  2,
			WindSpeedKmh: 12.3,
		},
	}

	// Example 1: One-line summary
	fmt.Println("=== Summary ===")
	fmt.Println(report.Summary())

	// Example 2: JSON projection
	fmt.Println("\n=== JSON ===")
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))

	// Example 3: Weather code descriptions, including the fallback for
	// codes the table does not know
	fmt.Println("\n=== Weather Codes ===")
	for _, code := range []int{0, 2, 61, 95, 42} {
		fmt.Printf("  %d: %s\n", code, models.Describe(code))
	}
}
