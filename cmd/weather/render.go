package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/MiguelElGallo/snapshottest/pkg/models"
)

var (
	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF79C6")).
			Background(lipgloss.Color("#282A36")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(1, 2)
)

// reportRows returns the label and value pairs of the panel in display
// order. The continent row only appears when the geolocation service
// returned one.
func reportRows(r models.WeatherReport) [][2]string {
	rows := [][2]string{
		{"City", r.Location.City},
		{"Country", r.Location.Country},
	}
	if r.Location.Continent != "" {
		rows = append(rows, [2]string{"Continent", r.Location.Continent})
	}
	rows = append(rows,
		[2]string{"Coordinates", fmt.Sprintf("%s, %s",
			strconv.FormatFloat(r.Location.Latitude, 'f', -1, 64),
			strconv.FormatFloat(r.Location.Longitude, 'f', -1, 64))},
		[2]string{"Temperature", fmt.Sprintf("%.1f °C", r.Weather.TemperatureC)},
		[2]string{"Wind Speed", fmt.Sprintf("%.1f km/h", r.Weather.WindSpeedKmh)},
		[2]string{"Condition", models.Describe(r.Weather.WeatherCode)},
	)
	return rows
}

// renderStyled draws the report as a bordered panel for terminals.
func renderStyled(r models.WeatherReport) string {
	var b strings.Builder
	for i, row := range reportRows(r) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(row[0]) + " " + valueStyle.Render(row[1]))
	}

	return titleStyle.Render("🌍 Weather Report") + "\n" + boxStyle.Render(b.String()) + "\n"
}

// renderPlain prints the same rows without styling for pipes and logs.
func renderPlain(r models.WeatherReport) string {
	var b strings.Builder
	b.WriteString("Weather Report\n")
	for _, row := range reportRows(r) {
		fmt.Fprintf(&b, "%-12s %s\n", row[0]+":", row[1])
	}
	return b.String()
}

func renderReport(r models.WeatherReport) string {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return renderStyled(r)
	}
	return renderPlain(r)
}
