// Package report sequences the two upstream fetches into one weather report.
package report

import (
	"context"

	"github.com/MiguelElGallo/snapshottest/pkg/config"
	"github.com/MiguelElGallo/snapshottest/pkg/ipapi"
	"github.com/MiguelElGallo/snapshottest/pkg/models"
	"github.com/MiguelElGallo/snapshottest/pkg/openmeteo"
)

// Builder holds the two API clients a report is composed from. It keeps no
// other state, so a single Builder is safe to reuse across calls.
type Builder struct {
	Geo   *ipapi.Client
	Meteo *openmeteo.Client
}

// NewBuilder wires both clients from the given configuration.
func NewBuilder(cfg config.Config) *Builder {
	return &Builder{
		Geo:   ipapi.NewClient(cfg.Geolocation.Endpoint, cfg.Geolocation.Timeout()),
		Meteo: openmeteo.NewClient(cfg.Weather.Endpoint, cfg.Weather.Timeout()),
	}
}

// Build fetches the caller's location, then the current weather at those
// coordinates, and combines both into a report. Provider errors propagate
// unchanged; the weather fetch is never attempted when geolocation fails,
// and no partial report is ever returned.
func (b *Builder) Build(ctx context.Context) (models.WeatherReport, error) {
	location, err := b.Geo.GetLocation(ctx)
	if err != nil {
		return models.WeatherReport{}, err
	}

	weather, err := b.Meteo.GetCurrentWeather(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return models.WeatherReport{}, err
	}

	return models.WeatherReport{Location: location, Weather: weather}, nil
}
