package forecast

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/i474232898/windwaves/internal/logger"
	"github.com/i474232898/windwaves/internal/metrics"
)

// Service fetches upstream payloads for configured locations, scores them and
// caches the result.
type Service struct {
	locations []Location
	fetchers  Fetchers
	store     Store
}

// NewService creates a new Service. store may be nil to disable caching.
func NewService(locations []Location, store Store, fetchers Fetchers) *Service {
	return &Service{
		locations: locations,
		fetchers:  fetchers,
		store:     store,
	}
}

// Locations returns the configured locations.
func (s *Service) Locations() []Location {
	return s.locations
}

// Lookup finds a configured location by name, ignoring case.
func (s *Service) Lookup(name string) (Location, error) {
	for _, l := range s.locations {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}
	return Location{}, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
}

// Lake returns the locations on a lake in configuration order.
func (s *Service) Lake(lake string) ([]Location, error) {
	var out []Location
	for _, l := range s.locations {
		if strings.EqualFold(l.Lake, lake) {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLake, lake)
	}
	return out, nil
}

// Forecast returns the bundle of a configured location, served from cache
// when fresh.
func (s *Service) Forecast(ctx context.Context, loc Location, idealWindDir int) (Bundle, error) {
	key := cacheKey(loc, idealWindDir)
	if s.store != nil {
		if b, err := s.store.Get(key); err == nil {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return b, nil
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}
	return s.build(ctx, loc, idealWindDir)
}

// Refresh rebuilds a location's bundle with its configured ideal wind
// direction and replaces the cached copy.
func (s *Service) Refresh(ctx context.Context, loc Location) error {
	_, err := s.build(ctx, loc, loc.IdealWindDir)
	return err
}

func (s *Service) build(ctx context.Context, loc Location, idealWindDir int) (Bundle, error) {
	started := time.Now()
	defer func() {
		metrics.PipelineDuration.WithLabelValues(loc.WeatherProvider).Observe(time.Since(started).Seconds())
	}()

	in, err := s.fetch(ctx, loc)
	if err != nil {
		return Bundle{}, fmt.Errorf("fetch %s: %w", loc.Name, err)
	}

	b, err := BuildBundle(loc, float64(idealWindDir), in)
	if err != nil {
		return Bundle{}, fmt.Errorf("build %s: %w", loc.Name, err)
	}

	logger.Debugf("scored %d hours for %s", len(b.ScoreSeries), loc.Key())
	if s.store != nil {
		s.store.Save(cacheKey(loc, idealWindDir), b)
	}
	return b, nil
}

// fetch runs all upstream requests of one location concurrently. The first
// failure cancels the others and is returned.
func (s *Service) fetch(ctx context.Context, loc Location) (Inputs, error) {
	switch {
	case loc.WeatherProvider == ProviderOpenMeteo && s.fetchers.OpenMeteo == nil,
		loc.WeatherProvider != ProviderOpenMeteo && s.fetchers.OpenWeather == nil:
		return Inputs{}, fmt.Errorf("%w: no client for %q", ErrUnknownProvider, loc.WeatherProvider)
	}

	var in Inputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		w, err := s.fetchers.Wave.FetchWave(gctx, loc.WaveSuffix)
		in.Wave = w
		return err
	})

	if loc.WeatherProvider == ProviderOpenMeteo {
		g.Go(func() error {
			p, err := s.fetchers.OpenMeteo.FetchPositional(gctx, loc.Lat, loc.Lon)
			in.Positional = &p
			return err
		})
	} else {
		g.Go(func() error {
			p, err := s.fetchers.OpenWeather.FetchHourly(gctx, loc.Lat, loc.Lon)
			in.Hourly = &p
			return err
		})
		g.Go(func() error {
			p, err := s.fetchers.OpenWeather.FetchThreeHourly(gctx, loc.Lat, loc.Lon)
			in.ThreeHourly = &p
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

// WindWaves returns the wave model output of a grid point on its own.
func (s *Service) WindWaves(ctx context.Context, suffix string) (WaveBundle, error) {
	p, err := s.fetchers.Wave.FetchWave(ctx, suffix)
	if err != nil {
		return WaveBundle{}, fmt.Errorf("fetch wave %s: %w", suffix, err)
	}
	return BuildWaveBundle(p)
}

// LakeOutlook scores every location on a lake concurrently and lists, per
// hour, the ones above threshold. Any single failure fails the outlook.
func (s *Service) LakeOutlook(ctx context.Context, lake string, threshold float64) ([]GoodHour, error) {
	locs, err := s.Lake(lake)
	if err != nil {
		return nil, err
	}

	results := make([]LocationScore, len(locs))
	g, gctx := errgroup.WithContext(ctx)
	for i, loc := range locs {
		g.Go(func() error {
			b, err := s.Forecast(gctx, loc, loc.IdealWindDir)
			if err != nil {
				return err
			}
			results[i] = LocationScore{Name: loc.Name, Bundle: b}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.WithFields(map[string]interface{}{"lake": lake}).Warnf("lake outlook failed: %v", err)
		return nil, err
	}

	return Aggregate(results, threshold), nil
}

// cacheKey covers every input that shapes a bundle, coordinates included.
func cacheKey(loc Location, idealWindDir int) string {
	return fmt.Sprintf("%s:%s:%s:%.4f,%.4f:%d",
		loc.Key(), loc.WaveSuffix, loc.WeatherProvider, loc.Lat, loc.Lon, idealWindDir)
}
