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

// OpenWeatherProvider fetches the One Call hourly feed and the 5 day / 3 hour
// forecast from OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/",
		client:  client,
		circuit: newCircuitBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) FetchHourly(ctx context.Context, lat, lon float64) (forecast.HourlyPayload, error) {
	var payload forecast.HourlyPayload
	if err := p.get(ctx, "onecall", lat, lon, &payload); err != nil {
		return forecast.HourlyPayload{}, err
	}
	return payload, nil
}

func (p *OpenWeatherProvider) FetchThreeHourly(ctx context.Context, lat, lon float64) (forecast.ThreeHourlyPayload, error) {
	var payload forecast.ThreeHourlyPayload
	if err := p.get(ctx, "forecast", lat, lon, &payload); err != nil {
		return forecast.ThreeHourlyPayload{}, err
	}
	return payload, nil
}

func (p *OpenWeatherProvider) get(ctx context.Context, endpoint string, lat, lon float64, dst interface{}) error {
	if p.apiKey == "" {
		return fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("units", "metric")
	values.Set("appid", p.apiKey)

	body, err := getBody(ctx, p.client, p.circuit, p.name, p.baseURL+endpoint+"?"+values.Encode())
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: openweather %s: %v", forecast.ErrMalformedPayload, endpoint, err)
	}
	return nil
}
