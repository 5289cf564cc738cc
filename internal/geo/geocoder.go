package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/nmoreaux/skylux/internal/domain"
)

// Geocoder resolves a free-form place query to coordinates. A nil result or
// error is never fatal for callers: they fall back to the continent table.
type Geocoder interface {
	Lookup(ctx context.Context, query string) (domain.GeoPoint, error)
}

var ErrNotFound = errors.New("geocoder: no result")

// HTTPGeocoder queries an external geocoding endpoint. The circuit breaker
// keeps a flapping provider from delaying every quote: once open, lookups
// fail fast and the caller's fallback path takes over.
type HTTPGeocoder struct {
	client  *http.Client
	baseURL string
	breaker *gobreaker.CircuitBreaker[domain.GeoPoint]
}

func NewHTTPGeocoder(baseURL string, timeout time.Duration) *HTTPGeocoder {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPGeocoder{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		breaker: gobreaker.NewCircuitBreaker[domain.GeoPoint](gobreaker.Settings{
			Name:    "geocoder",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

func (g *HTTPGeocoder) Lookup(ctx context.Context, query string) (domain.GeoPoint, error) {
	return g.breaker.Execute(func() (domain.GeoPoint, error) {
		return g.lookup(ctx, query)
	})
}

func (g *HTTPGeocoder) lookup(ctx context.Context, query string) (domain.GeoPoint, error) {
	u := fmt.Sprintf("%s?q=%s&limit=1", g.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.GeoPoint{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.GeoPoint{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.GeoPoint{}, fmt.Errorf("geocoder: status %d", resp.StatusCode)
	}

	var results []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.GeoPoint{}, err
	}
	if len(results) == 0 {
		return domain.GeoPoint{}, ErrNotFound
	}

	p := domain.GeoPoint{Lat: results[0].Lat, Lon: results[0].Lon}
	if !p.Valid() {
		return domain.GeoPoint{}, ErrNotFound
	}
	return p, nil
}

// Resolve finds coordinates for a place, trying the static airport list
// before the external geocoder. Geocoder errors (including an open breaker)
// yield an invalid point, which EstimateKm treats as "continent granularity
// only".
func Resolve(ctx context.Context, gc Geocoder, query string) domain.GeoPoint {
	if a := AirportByCode(query); a != nil {
		return a.Coord
	}
	if matches := SearchAirports(query); len(matches) > 0 {
		return matches[0].Coord
	}
	if gc == nil {
		return domain.GeoPoint{}
	}
	p, err := gc.Lookup(ctx, query)
	if err != nil {
		return domain.GeoPoint{}
	}
	return p
}
