package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/windwaves/internal/forecast"
	"github.com/i474232898/windwaves/internal/logger"
)

// Refresher rebuilds the cached bundle of one location.
type Refresher interface {
	Refresh(ctx context.Context, loc forecast.Location) error
}

// Purger drops expired cache entries.
type Purger interface {
	Purge() int
}

// Scheduler periodically refreshes cached bundles for configured locations.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	purger    Purger
	locations []forecast.Location
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler. purger may be nil.
func New(locations []forecast.Location, interval time.Duration, refresher Refresher, purger Purger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		refresher: refresher,
		purger:    purger,
		locations: locations,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		logger.Infof("scheduler: no locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(s.RunOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce refreshes every location concurrently. Failures are logged; one
// location failing does not stop the others.
func (s *Scheduler) RunOnce() {
	logger.Infof("scheduler: running refresh job")

	if s.purger != nil {
		if n := s.purger.Purge(); n > 0 {
			logger.Debugf("scheduler: purged %d expired bundles", n)
		}
	}

	var wg sync.WaitGroup
	for _, loc := range s.locations {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
			defer cancel()

			if err := s.refresher.Refresh(ctx, loc); err != nil {
				logger.Warnf("scheduler: refresh failed for %s: %v", loc.Key(), err)
			}
		}()
	}
	wg.Wait()
	logger.Infof("scheduler: completed refresh job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
