package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeGrid(t *testing.T) {
	cases := []struct {
		name       string
		start, end int64
		want       TimeGrid
	}{
		{name: "three hours inclusive", start: 0, end: 10800, want: TimeGrid{0, 3600, 7200, 10800}},
		{name: "single slot", start: 7200, end: 7200, want: TimeGrid{7200}},
		{name: "end not on step", start: 0, end: 7199, want: TimeGrid{0, 3600}},
		{name: "end before start", start: 3600, end: 0, want: TimeGrid{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewTimeGrid(tc.start, tc.end))
		})
	}
}
