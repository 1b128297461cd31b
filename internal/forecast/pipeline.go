package forecast

import (
	"fmt"
	"time"
)

// Unit conversions applied to the wave model's metric values.
const (
	KnotsPerMS   = 1.9438
	FeetPerMetre = 3.281
)

// Inputs are the decoded upstream payloads of one location. Hourly and
// ThreeHourly are used by openweather locations, Positional by openmeteo ones.
type Inputs struct {
	Wave        WavePayload
	Hourly      *HourlyPayload
	ThreeHourly *ThreeHourlyPayload
	Positional  *PositionalPayload
}

type waveData struct {
	start    time.Time
	interval time.Duration
	windMS   []float64
	heightM  []float64
}

func decodeWave(p WavePayload) (waveData, error) {
	start, interval, err := parseWaveTimes(p.Time)
	if err != nil {
		return waveData{}, fmt.Errorf("wave times: %w", err)
	}
	wind, err := ParseScaled(1, p.Wind)
	if err != nil {
		return waveData{}, fmt.Errorf("wave wind: %w", err)
	}
	height, err := ParseScaled(1, p.Height)
	if err != nil {
		return waveData{}, fmt.Errorf("wave height: %w", err)
	}
	return waveData{start: start, interval: interval, windMS: wind, heightM: height}, nil
}

func scaled(src []float64, scale float64) Channel {
	out := make(Channel, len(src))
	for i, v := range src {
		out[i] = scale * v
	}
	return out
}

// BuildWaveBundle converts the wave model files into metric and imperial series.
func BuildWaveBundle(p WavePayload) (WaveBundle, error) {
	w, err := decodeWave(p)
	if err != nil {
		return WaveBundle{}, err
	}
	return WaveBundle{
		PointStart:    w.start.UnixMilli(),
		PointInterval: w.interval.Milliseconds(),
		MetricSeries: []Series{
			{Name: "GLERL Wind (m/s)", Data: scaled(w.windMS, 1)},
			{Name: "GLERL Waves (m)", Data: scaled(w.heightM, 1)},
		},
		ImperialSeries: []Series{
			{Name: "GLERL Wind (knots)", Data: scaled(w.windMS, KnotsPerMS)},
			{Name: "GLERL Waves (ft)", Data: scaled(w.heightM, FeetPerMetre)},
		},
	}, nil
}

// weatherChannels is the weather provider's contribution, aligned to the wave grid.
type weatherChannels struct {
	label       string
	temperature DualChannel // temperature, feels-like
	wind        DualChannel // speed, gust
	direction   Channel
}

// BuildBundle aligns the location's weather forecast onto the wave model's
// hourly grid and scores every hour.
func BuildBundle(loc Location, idealWindDir float64, in Inputs) (Bundle, error) {
	w, err := decodeWave(in.Wave)
	if err != nil {
		return Bundle{}, err
	}
	if w.interval != time.Hour {
		return Bundle{}, fmt.Errorf("%w: %s", ErrUnsupportedCadence, w.interval)
	}
	n := len(w.windMS)
	if n == 0 {
		return Bundle{}, fmt.Errorf("%w: empty wave wind series", ErrMalformedPayload)
	}

	start := w.start.Unix()
	grid := NewTimeGrid(start, start+int64(n-1)*HourSeconds)

	var wc weatherChannels
	switch loc.WeatherProvider {
	case ProviderOpenWeather, "":
		wc, err = openWeatherChannels(grid, in.Hourly, in.ThreeHourly)
	case ProviderOpenMeteo:
		wc, err = positionalChannels(grid, in.Positional)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownProvider, loc.WeatherProvider)
	}
	if err != nil {
		return Bundle{}, err
	}

	windKnots := scaled(w.windMS, KnotsPerMS)
	heightFt := scaled(w.heightM, FeetPerMetre)

	scores := Score(Channels{
		WindSpeed:     windKnots,
		WaveHeight:    heightFt,
		Temperature:   wc.temperature.Primary,
		Gust:          wc.wind.Secondary,
		WindDirection: wc.direction,
	}, idealWindDir)

	series := []Series{
		{Name: "GLERL Wind (knots)", Data: windKnots},
		{Name: "GLERL Waves (ft)", Data: heightFt},
		{
			Name: wc.label + " Temp (C)", Data: wc.temperature.Primary,
			Name2: wc.label + " RealFeel Temp (C)", Data2: wc.temperature.Secondary,
		},
		{
			Name: wc.label + " Wind (m/s)", Data: wc.wind.Primary,
			Name2: wc.label + " Gusts (m/s)", Data2: wc.wind.Secondary,
		},
		{Name: wc.label + " Wind Direction (deg)", Data: wc.direction},
		{Name: "score", Data: scores},
	}

	return Bundle{
		PointStart:     w.start.UnixMilli(),
		PointInterval:  w.interval.Milliseconds(),
		ImperialSeries: series,
		ScoreSeries:    scores,
	}, nil
}

func openWeatherChannels(grid TimeGrid, hourly *HourlyPayload, threeHourly *ThreeHourlyPayload) (weatherChannels, error) {
	if hourly == nil || threeHourly == nil {
		return weatherChannels{}, fmt.Errorf("%w: openweather feeds missing", ErrMalformedPayload)
	}
	ch := func(f Field) Channel { return owmChannel(grid, f, *hourly, *threeHourly) }
	return weatherChannels{
		label:       "OWM",
		temperature: DualChannel{Primary: ch(FieldTemperature), Secondary: ch(FieldFeelsLike)},
		wind:        DualChannel{Primary: ch(FieldWindSpeed), Secondary: ch(FieldGust)},
		direction:   ch(FieldWindDirection),
	}, nil
}

func positionalChannels(grid TimeGrid, p *PositionalPayload) (weatherChannels, error) {
	if p == nil {
		return weatherChannels{}, fmt.Errorf("%w: positional feed missing", ErrMalformedPayload)
	}
	if p.Step != HourSeconds {
		return weatherChannels{}, fmt.Errorf("%w: positional step %ds", ErrUnsupportedCadence, p.Step)
	}
	if len(grid) == 0 {
		return weatherChannels{}, fmt.Errorf("%w: empty grid", ErrMalformedPayload)
	}

	offset := grid[0] - p.Start
	if offset%p.Step != 0 {
		return weatherChannels{}, fmt.Errorf("%w: positional start %d is off the wave grid hour", ErrUnsupportedCadence, p.Start)
	}
	startAt := int(offset / p.Step)
	endAt := startAt + len(grid) - 1
	ch := func(src []float64) Channel { return FillGaps(Trim(src, 1, startAt, endAt)) }

	return weatherChannels{
		label:       "Open-Meteo",
		temperature: DualChannel{Primary: ch(p.Temperature), Secondary: ch(p.ApparentTemperature)},
		wind:        DualChannel{Primary: ch(p.WindSpeed), Secondary: ch(p.WindGusts)},
		direction:   ch(p.WindDirection),
	}, nil
}
