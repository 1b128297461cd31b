package forecast

// HourSeconds is the step of every TimeGrid.
const HourSeconds int64 = 3600

// TimeGrid is the canonical hourly timeline of one request, in epoch seconds.
type TimeGrid []int64

// NewTimeGrid returns start, start+1h, ... up to and including end.
// The grid is empty when end < start.
func NewTimeGrid(start, end int64) TimeGrid {
	if end < start {
		return TimeGrid{}
	}
	grid := make(TimeGrid, 0, (end-start)/HourSeconds+1)
	for ts := start; ts <= end; ts += HourSeconds {
		grid = append(grid, ts)
	}
	return grid
}
