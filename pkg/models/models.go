package models

import "fmt"

// Location represents a geographic location derived from IP geolocation
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Continent string  `json:"continent,omitempty"`
}

// Weather represents the current weather data for a location
type Weather struct {
	TemperatureC float64 `json:"temperature_c"`
	WeatherCode  int     `json:"weather_code"`
	WindSpeedKmh float64 `json:"wind_speed_kmh"`
}

// WeatherReport combines one location with the weather observed there
type WeatherReport struct {
	Location Location `json:"location"`
	Weather  Weather  `json:"weather"`
}

// wmoDescriptions maps WMO weather interpretation codes to human-readable
// condition descriptions (https://open-meteo.com/en/docs).
var wmoDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// Describe returns the condition description for a WMO weather code.
// Codes missing from the table render as "Code {n}".
func Describe(code int) string {
	if desc, ok := wmoDescriptions[code]; ok {
		return desc
	}
	return fmt.Sprintf("Code %d", code)
}

// Summary returns a one-line human-readable report, for example
// "18.5°C, Partly cloudy in Helsinki, Finland, Europe".
// The continent segment is omitted when the location has none.
func (r WeatherReport) Summary() string {
	s := fmt.Sprintf("%.1f°C, %s in %s, %s",
		r.Weather.TemperatureC,
		Describe(r.Weather.WeatherCode),
		r.Location.City,
		r.Location.Country,
	)
	if r.Location.Continent != "" {
		s += ", " + r.Location.Continent
	}
	return s
}
