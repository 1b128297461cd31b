package forecast

import "context"

//go:generate mockgen -destination=mocks/fetchers.go -package=mocks github.com/i474232898/windwaves/internal/forecast WaveFetcher,OpenWeatherFetcher,PositionalFetcher

// WaveFetcher fetches the wave model files of one grid point.
type WaveFetcher interface {
	FetchWave(ctx context.Context, suffix string) (WavePayload, error)
}

// OpenWeatherFetcher fetches the two OpenWeather feeds for a coordinate.
type OpenWeatherFetcher interface {
	FetchHourly(ctx context.Context, lat, lon float64) (HourlyPayload, error)
	FetchThreeHourly(ctx context.Context, lat, lon float64) (ThreeHourlyPayload, error)
}

// PositionalFetcher fetches an hourly array forecast for a coordinate.
type PositionalFetcher interface {
	FetchPositional(ctx context.Context, lat, lon float64) (PositionalPayload, error)
}

// Fetchers bundles the upstream clients the service fans out to.
type Fetchers struct {
	Wave        WaveFetcher
	OpenWeather OpenWeatherFetcher
	OpenMeteo   PositionalFetcher
}

// Store is the contract of the bundle cache.
type Store interface {
	Save(key string, b Bundle)
	Get(key string) (Bundle, error)
}
