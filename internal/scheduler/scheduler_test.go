package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/i474232898/windwaves/internal/forecast"
)

type fakeRefresher struct {
	mu    sync.Mutex
	names []string
	fail  string
}

func (f *fakeRefresher) Refresh(ctx context.Context, loc forecast.Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.names = append(f.names, loc.Name)
	if loc.Name == f.fail {
		return errors.New("upstream down")
	}
	return nil
}

type fakePurger struct{ calls int }

func (p *fakePurger) Purge() int {
	p.calls++
	return 1
}

func TestRunOnceRefreshesEveryLocation(t *testing.T) {
	locs := []forecast.Location{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	r := &fakeRefresher{fail: "b"}
	p := &fakePurger{}

	New(locs, time.Minute, r, p).RunOnce()

	assert.ElementsMatch(t, []string{"a", "b", "c"}, r.names)
	assert.Equal(t, 1, p.calls)
}

func TestStartWithoutLocations(t *testing.T) {
	s := New(nil, time.Minute, &fakeRefresher{}, nil)

	assert.NoError(t, s.Start())
	s.Stop()
}
