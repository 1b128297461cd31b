package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scored(name string, scores ...float64) LocationScore {
	return LocationScore{
		Name: name,
		Bundle: Bundle{
			PointStart:    1_000_000,
			PointInterval: 3_600_000,
			ScoreSeries:   Channel(scores),
		},
	}
}

func TestAggregateListsQualifyingInInputOrder(t *testing.T) {
	got := Aggregate([]LocationScore{
		scored("burlington", 0.6),
		scored("oakville", 0.4),
		scored("bronte", 0.7),
	}, 0.5)

	assert.Equal(t, []GoodHour{
		{Timestamp: 1_000_000, Locations: []string{"burlington", "bronte"}},
	}, got)
}

func TestAggregateIsSparse(t *testing.T) {
	got := Aggregate([]LocationScore{
		scored("a", 0.1, 0.9, nan, 0.5),
		scored("b", 0.2, 0.1, 0.8, 0.51),
	}, 0.5)

	assert.Equal(t, []GoodHour{
		{Timestamp: 1_000_000 + 3_600_000, Locations: []string{"a"}},
		{Timestamp: 1_000_000 + 2*3_600_000, Locations: []string{"b"}},
		{Timestamp: 1_000_000 + 3*3_600_000, Locations: []string{"b"}},
	}, got)
}

func TestAggregateUsesShortestSeries(t *testing.T) {
	got := Aggregate([]LocationScore{
		scored("a", 0.9, 0.9, 0.9),
		scored("b", 0.9),
	}, 0.5)

	assert.Len(t, got, 1)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Nil(t, Aggregate(nil, 0.5))
	assert.Nil(t, Aggregate([]LocationScore{scored("a", 0.1)}, 0.5))
}
