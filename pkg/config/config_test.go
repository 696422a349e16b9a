package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://ip-api.com/json/", cfg.Geolocation.Endpoint)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.Weather.Endpoint)
	assert.Equal(t, 10*time.Second, cfg.Geolocation.Timeout())
	assert.Equal(t, 10*time.Second, cfg.Weather.Timeout())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
geolocation:
  endpoint: http://localhost:9001/json/
  timeout_seconds: 2
weather:
  endpoint: http://localhost:9002/v1/forecast
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9001/json/", cfg.Geolocation.Endpoint)
	assert.Equal(t, 2, cfg.Geolocation.TimeoutSeconds)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, "http://localhost:9002/v1/forecast", cfg.Weather.Endpoint)
	assert.Equal(t, 10, cfg.Weather.TimeoutSeconds)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("geolocation: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("IP_API_URL", "http://127.0.0.1:7001/json/")
	t.Setenv("OPEN_METEO_URL", "http://127.0.0.1:7002/v1/forecast")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:7001/json/", cfg.Geolocation.Endpoint)
	assert.Equal(t, "http://127.0.0.1:7002/v1/forecast", cfg.Weather.Endpoint)
}
