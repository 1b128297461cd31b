package forecast

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WavePayload holds the three raw GLERL point files of one wave grid point.
type WavePayload struct {
	Time   string
	Wind   string
	Height string
}

// HourlyEntry is one record of the OpenWeather One Call hourly feed.
// Absent fields decode as nil and resample as missing.
type HourlyEntry struct {
	Dt        int64    `json:"dt"`
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	WindSpeed *float64 `json:"wind_speed"`
	WindGust  *float64 `json:"wind_gust"`
	WindDeg   *float64 `json:"wind_deg"`
}

// HourlyPayload is the near-term OpenWeather One Call response.
type HourlyPayload struct {
	Timezone string        `json:"timezone"`
	Hourly   []HourlyEntry `json:"hourly"`
}

// ThreeHourlyEntry is one record of the OpenWeather 5 day / 3 hour forecast.
type ThreeHourlyEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
		Gust  *float64 `json:"gust"`
		Deg   *float64 `json:"deg"`
	} `json:"wind"`
}

// ThreeHourlyPayload is the longer-range OpenWeather forecast, used to fill
// what the hourly feed does not cover.
type ThreeHourlyPayload struct {
	Cnt  int                `json:"cnt"`
	List []ThreeHourlyEntry `json:"list"`
}

// PositionalPayload is an hourly forecast indexed by position from Start (epoch
// seconds) in steps of Step seconds. Null entries are Missing.
type PositionalPayload struct {
	Start               int64
	Step                int64
	Temperature         []float64
	ApparentTemperature []float64
	WindSpeed           []float64
	WindGusts           []float64
	WindDirection       []float64
}

// Field identifies one weather quantity.
type Field string

const (
	FieldTemperature   Field = "temperature"
	FieldFeelsLike     Field = "feels_like"
	FieldWindSpeed     Field = "wind_speed"
	FieldGust          Field = "gust"
	FieldWindDirection Field = "wind_direction"
)

type accessorPair struct {
	hourly      func(HourlyEntry) *float64
	threeHourly func(ThreeHourlyEntry) *float64
}

var owmFields = map[Field]accessorPair{
	FieldTemperature: {
		hourly:      func(e HourlyEntry) *float64 { return e.Temp },
		threeHourly: func(e ThreeHourlyEntry) *float64 { return e.Main.Temp },
	},
	FieldFeelsLike: {
		hourly:      func(e HourlyEntry) *float64 { return e.FeelsLike },
		threeHourly: func(e ThreeHourlyEntry) *float64 { return e.Main.FeelsLike },
	},
	FieldWindSpeed: {
		hourly:      func(e HourlyEntry) *float64 { return e.WindSpeed },
		threeHourly: func(e ThreeHourlyEntry) *float64 { return e.Wind.Speed },
	},
	FieldGust: {
		hourly:      func(e HourlyEntry) *float64 { return e.WindGust },
		threeHourly: func(e ThreeHourlyEntry) *float64 { return e.Wind.Gust },
	},
	FieldWindDirection: {
		hourly:      func(e HourlyEntry) *float64 { return e.WindDeg },
		threeHourly: func(e ThreeHourlyEntry) *float64 { return e.Wind.Deg },
	},
}

func toRecords[T any](entries []T, ts func(T) int64, get func(T) *float64) []SourceRecord {
	out := make([]SourceRecord, len(entries))
	for i, e := range entries {
		out[i] = SourceRecord{Time: ts(e), Value: Missing}
		if v := get(e); v != nil {
			out[i].Value = *v
		}
	}
	return out
}

// owmChannel resamples one field from both OpenWeather feeds onto the grid,
// preferring the hourly feed, and fills short gaps.
func owmChannel(grid TimeGrid, f Field, hourly HourlyPayload, threeHourly ThreeHourlyPayload) Channel {
	acc := owmFields[f]
	near := toRecords(hourly.Hourly, func(e HourlyEntry) int64 { return e.Dt }, acc.hourly)
	far := toRecords(threeHourly.List, func(e ThreeHourlyEntry) int64 { return e.Dt }, acc.threeHourly)
	return FillGaps(ResampleMerged(grid, near, far))
}

// ParseGLERLTime parses a wave model time token such as "21-06-01 00Z" or
// "21-06-01-00Z" as UTC.
func ParseGLERLTime(tok string) (time.Time, error) {
	tok = strings.TrimSpace(tok)
	fields := strings.Split(tok, "-")
	if len(fields) == 3 {
		rest := strings.Fields(fields[2])
		if len(rest) != 2 {
			return time.Time{}, fmt.Errorf("%w: time token %q", ErrMalformedPayload, tok)
		}
		fields = []string{fields[0], fields[1], rest[0], rest[1]}
	}
	if len(fields) != 4 {
		return time.Time{}, fmt.Errorf("%w: time token %q", ErrMalformedPayload, tok)
	}
	hour := strings.TrimSuffix(strings.TrimSpace(fields[3]), "Z")
	s := fmt.Sprintf("20%s-%s-%sT%s:00:00Z", fields[0], fields[1], fields[2], hour)
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time token %q: %v", ErrMalformedPayload, tok, err)
	}
	return ts, nil
}

// parseWaveTimes returns the first timestamp and the step between the first two.
func parseWaveTimes(raw string) (time.Time, time.Duration, error) {
	tokens := strings.Split(raw, ",")
	if len(tokens) < 2 {
		return time.Time{}, 0, fmt.Errorf("%w: expected at least 2 time tokens, got %d", ErrMalformedPayload, len(tokens))
	}
	start, err := ParseGLERLTime(tokens[0])
	if err != nil {
		return time.Time{}, 0, err
	}
	next, err := ParseGLERLTime(tokens[1])
	if err != nil {
		return time.Time{}, 0, err
	}
	return start, next.Sub(start), nil
}

// ParseScaled parses a comma-separated list of numbers, skipping empty tokens,
// and multiplies each by scale.
func ParseScaled(scale float64, raw string) ([]float64, error) {
	var out []float64
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %q", ErrMalformedPayload, tok)
		}
		out = append(out, scale*v)
	}
	return out, nil
}
