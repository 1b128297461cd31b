package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/i474232898/windwaves/internal/forecast"
	"github.com/i474232898/windwaves/internal/logger"
)

var validate = validator.New()

type AppConfig struct {
	OpenWeatherAPIKey string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// RefreshInterval controls how often cached bundles are rebuilt for each location.
	RefreshInterval time.Duration

	// Bundle cache retention.
	CacheMaxEntries int           // max number of cached bundles (0 = unlimited)
	CacheTTL        time.Duration // max age of a cached bundle (0 = unlimited)

	// Locations to serve, loaded from LocationsFile.
	LocationsFile string
	Locations     []forecast.Location

	DefaultThreshold float64

	StaticDir string
	LogLevel  string
	Port      string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Infof("no .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = getenvDefault("OPENWEATHER_API_KEY", os.Getenv("OWMKEY"))

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "15s"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "30m"); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getenvDuration("CACHE_TTL", "1h"); err != nil {
		return nil, err
	}
	cfg.CacheMaxEntries = getenvInt("CACHE_MAX_ENTRIES", 100)

	cfg.DefaultThreshold = forecast.DefaultThreshold
	if v := os.Getenv("DEFAULT_THRESHOLD"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_THRESHOLD: %w", err)
		}
		cfg.DefaultThreshold = t
	}

	cfg.StaticDir = os.Getenv("STATIC_DIR")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.Port = getenvDefault("PORT", "5000")

	cfg.LocationsFile = getenvDefault("LOCATIONS_FILE", "locations.yaml")
	data, err := os.ReadFile(cfg.LocationsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read locations file '%s': %w", cfg.LocationsFile, err)
	}
	if cfg.Locations, err = ParseLocations(data); err != nil {
		return nil, err
	}

	return cfg, nil
}

// locationEntry mirrors forecast.Location with an optional ideal wind direction
// so that an explicit 0 (north) can be told apart from "not set".
type locationEntry struct {
	Name            string  `yaml:"name"`
	Lake            string  `yaml:"lake"`
	Lat             float64 `yaml:"lat"`
	Lon             float64 `yaml:"lon"`
	WaveSuffix      string  `yaml:"wave_suffix"`
	WeatherProvider string  `yaml:"weather_provider"`
	IdealWindDir    *int    `yaml:"ideal_wind_dir"`
}

// ParseLocations decodes and validates the YAML location table. Names must be
// unique; provider defaults to openweather and ideal wind direction to 270.
func ParseLocations(data []byte) ([]forecast.Location, error) {
	var doc struct {
		Locations []locationEntry `yaml:"locations"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse locations from YAML: %w", err)
	}
	if len(doc.Locations) == 0 {
		return nil, fmt.Errorf("no locations configured")
	}

	seen := make(map[string]bool, len(doc.Locations))
	locs := make([]forecast.Location, 0, len(doc.Locations))
	for _, e := range doc.Locations {
		loc := forecast.Location{
			Name:            e.Name,
			Lake:            e.Lake,
			Lat:             e.Lat,
			Lon:             e.Lon,
			WaveSuffix:      e.WaveSuffix,
			WeatherProvider: e.WeatherProvider,
			IdealWindDir:    forecast.DefaultIdealWindDir,
		}
		if loc.WeatherProvider == "" {
			loc.WeatherProvider = forecast.ProviderOpenWeather
		}
		if e.IdealWindDir != nil {
			loc.IdealWindDir = *e.IdealWindDir
		}

		if err := validate.Struct(loc); err != nil {
			return nil, fmt.Errorf("invalid location %q: %w", e.Name, err)
		}
		name := strings.ToLower(loc.Name)
		if seen[name] {
			return nil, fmt.Errorf("duplicate location %q", loc.Name)
		}
		seen[name] = true
		locs = append(locs, loc)
	}
	return locs, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
