package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/windwaves/internal/forecast"
)

const openMeteoHourly = "temperature_2m,apparent_temperature,wind_speed_10m,wind_gusts_10m,wind_direction_10m"

// OpenMeteoProvider fetches hourly arrays from Open-Meteo. No API key is needed.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		client:  client,
		circuit: newCircuitBreaker("openmeteo"),
	}
}

func (p *OpenMeteoProvider) FetchPositional(ctx context.Context, lat, lon float64) (forecast.PositionalPayload, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("hourly", openMeteoHourly)
	values.Set("wind_speed_unit", "ms")
	values.Set("timeformat", "unixtime")
	values.Set("timezone", "GMT")
	values.Set("forecast_days", "7")

	body, err := getBody(ctx, p.client, p.circuit, p.name, p.baseURL+"?"+values.Encode())
	if err != nil {
		return forecast.PositionalPayload{}, err
	}

	var payload struct {
		Hourly struct {
			Time                []int64    `json:"time"`
			Temperature         []*float64 `json:"temperature_2m"`
			ApparentTemperature []*float64 `json:"apparent_temperature"`
			WindSpeed           []*float64 `json:"wind_speed_10m"`
			WindGusts           []*float64 `json:"wind_gusts_10m"`
			WindDirection       []*float64 `json:"wind_direction_10m"`
		} `json:"hourly"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return forecast.PositionalPayload{}, fmt.Errorf("%w: openmeteo: %v", forecast.ErrMalformedPayload, err)
	}

	h := payload.Hourly
	if len(h.Time) == 0 {
		return forecast.PositionalPayload{}, fmt.Errorf("%w: openmeteo: no hourly times", forecast.ErrMalformedPayload)
	}
	step := forecast.HourSeconds
	if len(h.Time) > 1 {
		step = h.Time[1] - h.Time[0]
	}

	return forecast.PositionalPayload{
		Start:               h.Time[0],
		Step:                step,
		Temperature:         nullable(h.Temperature),
		ApparentTemperature: nullable(h.ApparentTemperature),
		WindSpeed:           nullable(h.WindSpeed),
		WindGusts:           nullable(h.WindGusts),
		WindDirection:       nullable(h.WindDirection),
	}, nil
}

func nullable(in []*float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = forecast.Missing
		if v != nil {
			out[i] = *v
		}
	}
	return out
}
