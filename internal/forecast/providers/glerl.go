package providers

import (
	"context"
	"net/http"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"

	"github.com/i474232898/windwaves/internal/forecast"
)

// GLERLProvider fetches point output of the GLERL Great Lakes wave model.
type GLERLProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewGLERLProvider(client *http.Client) *GLERLProvider {
	return &GLERLProvider{
		name:    "glerl",
		baseURL: "https://www.glerl.noaa.gov/emf/waves/WW3/point/wave",
		client:  client,
		circuit: newCircuitBreaker("glerl"),
	}
}

// FetchWave downloads the time, wind and height files of the grid point named
// by suffix (e.g. "-79.79-43.31.txt") concurrently.
func (p *GLERLProvider) FetchWave(ctx context.Context, suffix string) (forecast.WavePayload, error) {
	var out forecast.WavePayload

	g, gctx := errgroup.WithContext(ctx)
	for _, f := range []struct {
		kind string
		dst  *string
	}{
		{"time", &out.Time},
		{"wind", &out.Wind},
		{"hgt", &out.Height},
	} {
		g.Go(func() error {
			body, err := getBody(gctx, p.client, p.circuit, p.name, p.baseURL+f.kind+suffix)
			if err != nil {
				return err
			}
			*f.dst = string(body)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return forecast.WavePayload{}, err
	}
	return out, nil
}
