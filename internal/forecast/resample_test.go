package forecast

import (
	"testing"
)

func TestResampleExactMatchOnly(t *testing.T) {
	grid := NewTimeGrid(0, 3*3600)

	got := Resample(grid, []SourceRecord{
		{Time: 1, Value: 99},         // between slots 0 and 1: dropped
		{Time: 3600, Value: 1},       // slot 1
		{Time: 3*3600 + 1, Value: 5}, // past the grid: dropped
	})

	assertChannel(t, []float64{nan, 1, nan, nan}, got)
}

func TestResampleSkipsOutOfOrder(t *testing.T) {
	grid := NewTimeGrid(0, 2*3600)

	got := Resample(grid, []SourceRecord{
		{Time: 7200, Value: 3},
		{Time: 0, Value: 1}, // cursor already past slot 0
	})

	assertChannel(t, []float64{nan, nan, 3}, got)
}

func TestResampleRecordsBeforeGrid(t *testing.T) {
	grid := NewTimeGrid(7200, 3*3600)

	got := Resample(grid, []SourceRecord{
		{Time: 0, Value: 1},
		{Time: 3600, Value: 2},
		{Time: 7200, Value: 3},
		{Time: 10800, Value: 4},
	})

	assertChannel(t, []float64{3, 4}, got)
}

func TestResampleMergedFirstWriterWins(t *testing.T) {
	grid := NewTimeGrid(0, 3*3600)
	hourly := []SourceRecord{
		{Time: 0, Value: 1},
		{Time: 3600, Value: nan},
		{Time: 7200, Value: 3},
	}
	threeHourly := []SourceRecord{
		{Time: 0, Value: 100},
		{Time: 3600, Value: 200},
		{Time: 10800, Value: 400},
	}

	got := ResampleMerged(grid, hourly, threeHourly)

	assertChannel(t, []float64{1, 200, 3, 400}, got)
}

func TestMerge(t *testing.T) {
	got := Merge(Channel{nan, 2, nan}, Channel{10, 20})

	assertChannel(t, []float64{10, 2, nan}, got)
}
