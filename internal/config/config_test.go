package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/windwaves/internal/forecast"
)

const sampleLocations = `
locations:
  - name: burlington
    lake: ontario
    lat: 43.2795
    lon: -79.7310
    wave_suffix: -79.79-43.31.txt
  - name: bronte
    lake: ontario
    lat: 43.39
    lon: -79.70
    wave_suffix: -79.70-43.39.txt
    weather_provider: openmeteo
    ideal_wind_dir: 0
`

func TestParseLocationsDefaults(t *testing.T) {
	locs, err := ParseLocations([]byte(sampleLocations))
	require.NoError(t, err)
	require.Len(t, locs, 2)

	assert.Equal(t, forecast.ProviderOpenWeather, locs[0].WeatherProvider)
	assert.Equal(t, forecast.DefaultIdealWindDir, locs[0].IdealWindDir)
	assert.Equal(t, forecast.ProviderOpenMeteo, locs[1].WeatherProvider)
	assert.Equal(t, 0, locs[1].IdealWindDir)
}

func TestParseLocationsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty":         `locations: []`,
		"not yaml":      `locations: [`,
		"missing lake":  "locations:\n  - name: a\n    wave_suffix: x.txt\n",
		"bad direction": "locations:\n  - name: a\n    lake: l\n    wave_suffix: x.txt\n    ideal_wind_dir: 360\n",
		"bad provider":  "locations:\n  - name: a\n    lake: l\n    wave_suffix: x.txt\n    weather_provider: darksky\n",
		"bad latitude":  "locations:\n  - name: a\n    lake: l\n    lat: 91\n    wave_suffix: x.txt\n",
		"duplicate":     "locations:\n  - {name: a, lake: l, wave_suffix: x.txt}\n  - {name: A, lake: m, wave_suffix: y.txt}\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLocations([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleLocations), 0o600))

	t.Setenv("LOCATIONS_FILE", path)
	t.Setenv("CACHE_TTL", "2h")
	t.Setenv("DEFAULT_THRESHOLD", "0.7")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Len(t, cfg.Locations, 2)
	assert.Equal(t, 2*time.Hour, cfg.CacheTTL)
	assert.Equal(t, 100, cfg.CacheMaxEntries)
	assert.Equal(t, 0.7, cfg.DefaultThreshold)
	assert.Equal(t, "5000", cfg.Port)
}

func TestLoadOpenWeatherKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleLocations), 0o600))
	t.Setenv("LOCATIONS_FILE", path)

	cases := []struct {
		name    string
		primary string
		legacy  string
		want    string
	}{
		{name: "primary", primary: "abc", legacy: "", want: "abc"},
		{name: "legacy fallback", primary: "", legacy: "old", want: "old"},
		{name: "primary wins", primary: "abc", legacy: "old", want: "abc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OPENWEATHER_API_KEY", tc.primary)
			t.Setenv("OWMKEY", tc.legacy)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.OpenWeatherAPIKey)
		})
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "soon")

	_, err := Load()
	assert.Error(t, err)
}
