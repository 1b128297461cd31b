package forecast

import (
	"encoding/json"
	"math"
	"strings"
)

// Missing marks a slot with no value. It propagates through arithmetic.
var Missing = math.NaN()

// IsMissing reports whether v is the Missing marker.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// Channel is one numeric-or-missing series aligned to a TimeGrid.
type Channel []float64

// NewChannel returns a channel of n missing slots.
func NewChannel(n int) Channel {
	ch := make(Channel, n)
	for i := range ch {
		ch[i] = Missing
	}
	return ch
}

// At returns the value at i, or Missing when i is out of range.
func (c Channel) At(i int) float64 {
	if i < 0 || i >= len(c) {
		return Missing
	}
	return c[i]
}

// MarshalJSON encodes missing slots as null.
func (c Channel) MarshalJSON() ([]byte, error) {
	out := make([]*float64, len(c))
	for i := range c {
		if !IsMissing(c[i]) {
			v := c[i]
			out[i] = &v
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes null as a missing slot.
func (c *Channel) UnmarshalJSON(data []byte) error {
	var in []*float64
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	ch := NewChannel(len(in))
	for i, v := range in {
		if v != nil {
			ch[i] = *v
		}
	}
	*c = ch
	return nil
}

// DualChannel pairs two related series, e.g. temperature and feels-like.
type DualChannel struct {
	Primary   Channel
	Secondary Channel
}

// Channels is the aligned input set of the score engine.
type Channels struct {
	WindSpeed     Channel // knots
	WaveHeight    Channel // feet
	Temperature   Channel // °C
	Gust          Channel // m/s
	WindDirection Channel // degrees
}

// Weather providers a location can be configured with.
const (
	ProviderOpenWeather = "openweather"
	ProviderOpenMeteo   = "openmeteo"
)

// DefaultIdealWindDir is used when a location does not set one.
const DefaultIdealWindDir = 270

// Location is a statically configured spot on a lake.
type Location struct {
	Name            string  `json:"name" yaml:"name" validate:"required"`
	Lake            string  `json:"lake" yaml:"lake" validate:"required"`
	Lat             float64 `json:"lat" yaml:"lat" validate:"latitude"`
	Lon             float64 `json:"lon" yaml:"lon" validate:"longitude"`
	WaveSuffix      string  `json:"waveSuffix" yaml:"wave_suffix" validate:"required"`
	WeatherProvider string  `json:"weatherProvider" yaml:"weather_provider" validate:"oneof=openweather openmeteo"`
	IdealWindDir    int     `json:"idealWindDir" yaml:"ideal_wind_dir" validate:"min=0,max=359"`
}

// Key returns a canonical string key for indexing this location in caches.
func (l Location) Key() string {
	return strings.ToLower(l.Lake + ":" + l.Name)
}

// Series is one named chart series; Name2/Data2 carry the secondary of a DualChannel.
type Series struct {
	Name  string  `json:"name"`
	Data  Channel `json:"data"`
	Name2 string  `json:"name2,omitempty"`
	Data2 Channel `json:"data2,omitempty"`
}

// Bundle is the scored forecast for one location.
// PointStart and PointInterval are in milliseconds.
type Bundle struct {
	PointStart     int64    `json:"pointStart"`
	PointInterval  int64    `json:"pointInterval"`
	ImperialSeries []Series `json:"imperialSeries"`
	ScoreSeries    Channel  `json:"scoreSeries"`
}

// WaveBundle is the wave-model output on its own, in both unit systems.
type WaveBundle struct {
	PointStart     int64    `json:"pointStart"`
	PointInterval  int64    `json:"pointInterval"`
	MetricSeries   []Series `json:"metricSeries"`
	ImperialSeries []Series `json:"imperialSeries"`
}

// LocationScore is one location's contribution to a lake outlook.
type LocationScore struct {
	Name   string
	Bundle Bundle
}

// GoodHour lists the locations scoring above the threshold at Timestamp (ms).
type GoodHour struct {
	Timestamp int64    `json:"timestamp"`
	Locations []string `json:"locations"`
}
