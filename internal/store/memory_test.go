package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/windwaves/internal/forecast"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestStore(maxEntries int, ttl time.Duration) (*MemoryStore, *clock) {
	c := &clock{t: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(maxEntries, ttl)
	s.now = c.now
	return s, c
}

func bundle(start int64) forecast.Bundle {
	return forecast.Bundle{PointStart: start, PointInterval: 3_600_000}
}

func TestMemoryStoreSaveAndGet(t *testing.T) {
	s, _ := newTestStore(10, time.Hour)

	_, err := s.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)

	s.Save("a", bundle(1))
	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.PointStart)

	s.Save("a", bundle(2))
	got, err = s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.PointStart)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStoreExpires(t *testing.T) {
	s, c := newTestStore(10, time.Hour)
	s.Save("a", bundle(1))

	c.t = c.t.Add(59 * time.Minute)
	_, err := s.Get("a")
	assert.NoError(t, err)

	c.t = c.t.Add(time.Minute)
	_, err = s.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreEvictsOldest(t *testing.T) {
	s, _ := newTestStore(2, 0)
	s.Save("a", bundle(1))
	s.Save("b", bundle(2))
	s.Save("a", bundle(3)) // refreshes a, b is now oldest
	s.Save("c", bundle(4))

	_, err := s.Get("b")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get("a")
	assert.NoError(t, err)
	_, err = s.Get("c")
	assert.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestMemoryStorePurge(t *testing.T) {
	s, c := newTestStore(0, time.Hour)
	s.Save("old", bundle(1))
	c.t = c.t.Add(30 * time.Minute)
	s.Save("new", bundle(2))
	c.t = c.t.Add(45 * time.Minute)

	assert.Equal(t, 1, s.Purge())
	assert.Equal(t, 1, s.Len())
	_, err := s.Get("new")
	assert.NoError(t, err)
}
