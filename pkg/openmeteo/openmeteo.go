// Package openmeteo fetches current weather conditions from the Open-Meteo
// forecast API (free tier, no API key required).
package openmeteo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MiguelElGallo/snapshottest/pkg/apierr"
	"github.com/MiguelElGallo/snapshottest/pkg/models"
)

// DefaultEndpoint is the public Open-Meteo forecast endpoint.
const DefaultEndpoint = "https://api.open-meteo.com/v1/forecast"

const serviceName = "open-meteo"

// currentFields selects the current-condition variables the report needs.
const currentFields = "temperature_2m,weather_code,wind_speed_10m"

// Client calls the Open-Meteo forecast endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a weather client. An empty endpoint selects
// DefaultEndpoint; timeout bounds each call.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// response mirrors the Open-Meteo payload. Fields decode into pointers so
// a missing key is distinguishable from a zero value.
type response struct {
	Current *struct {
		Temperature *float64 `json:"temperature_2m"`
		WeatherCode *int     `json:"weather_code"`
		WindSpeed   *float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// GetCurrentWeather returns the current weather for the given coordinates.
// Coordinate ranges are the caller's responsibility; the service rejects
// values it cannot use.
func (c *Client) GetCurrentWeather(ctx context.Context, latitude, longitude float64) (models.Weather, error) {
	query := url.Values{
		"latitude":  {strconv.FormatFloat(latitude, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(longitude, 'f', -1, 64)},
		"current":   {currentFields},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return models.Weather{}, &apierr.TransportError{Service: serviceName, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.Weather{}, &apierr.TransportError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Weather{}, &apierr.TransportError{Service: serviceName, StatusCode: resp.StatusCode}
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.Weather{}, &apierr.MalformedResponseError{Service: serviceName, Err: err}
	}

	if payload.Current == nil {
		return models.Weather{}, &apierr.MalformedResponseError{Service: serviceName, Field: "current"}
	}
	if payload.Current.Temperature == nil {
		return models.Weather{}, &apierr.MalformedResponseError{Service: serviceName, Field: "temperature_2m"}
	}
	if payload.Current.WeatherCode == nil {
		return models.Weather{}, &apierr.MalformedResponseError{Service: serviceName, Field: "weather_code"}
	}
	if payload.Current.WindSpeed == nil {
		return models.Weather{}, &apierr.MalformedResponseError{Service: serviceName, Field: "wind_speed_10m"}
	}

	return models.Weather{
		TemperatureC: *payload.Current.Temperature,
		WeatherCode:  *payload.Current.WeatherCode,
		WindSpeedKmh: *payload.Current.WindSpeed,
	}, nil
}
