// Package config carries the endpoint and timeout settings for both
// upstream services, with defaults that match the public free tiers.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Service holds the settings for one upstream HTTP API.
type Service struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the per-call timeout as a duration.
func (s Service) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Config structure for the YAML configuration file.
type Config struct {
	Geolocation Service `yaml:"geolocation"`
	Weather     Service `yaml:"weather"`
}

// Default returns the stock configuration: ip-api.com and Open-Meteo,
// both keyless, with 10 second timeouts.
func Default() Config {
	return Config{
		Geolocation: Service{
			Endpoint:       "http://ip-api.com/json/",
			TimeoutSeconds: 10,
		},
		Weather: Service{
			Endpoint:       "https://api.open-meteo.com/v1/forecast",
			TimeoutSeconds: 10,
		},
	}
}

// Load returns the default configuration overlaid with the optional YAML
// file at path, then with the IP_API_URL and OPEN_METEO_URL environment
// overrides. An empty path skips the file step.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if v := os.Getenv("IP_API_URL"); v != "" {
		cfg.Geolocation.Endpoint = v
	}
	if v := os.Getenv("OPEN_METEO_URL"); v != "" {
		cfg.Weather.Endpoint = v
	}

	return cfg, nil
}
