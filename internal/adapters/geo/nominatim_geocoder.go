package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/platform/httpx"
)

// Nominatim returns coordinates as decimal-degree strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NominatimGeocoder resolves place names using the OSM Nominatim search
// endpoint. It needs no credential, which makes it the default choice for
// display-only geocoding (map centering and markers).
type NominatimGeocoder struct {
	client  *httpx.Client
	baseURL string
}

func NewNominatimGeocoder() *NominatimGeocoder {
	return &NominatimGeocoder{
		client:  httpx.NewClient(10*time.Second, ""),
		baseURL: "https://nominatim.openstreetmap.org",
	}
}

// Geocode resolves one place name, taking the first candidate of the
// ordered match list.
func (g *NominatimGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	norm := normalize(place)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: place must be non-empty")
	}

	endpoint := g.baseURL + "/search"

	resp, err := g.client.DoWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.client.NewRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", norm)
		q.Set("format", "json")
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w: %w", norm, domain.ErrCommunication, err)
	}
	defer resp.Body.Close()

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w: %w", norm, domain.ErrCommunication, err)
	}

	if len(decoded) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: no results: %w", norm, domain.ErrPlaceNotFound)
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lat %q: %w", norm, decoded[0].Lat, domain.ErrCommunication)
	}
	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lon %q: %w", norm, decoded[0].Lon, domain.ErrCommunication)
	}

	return domain.Coordinates{Lon: lon, Lat: lat}, nil
}

// WithBaseURL points the geocoder at a different host (tests).
func (g *NominatimGeocoder) WithBaseURL(url string) *NominatimGeocoder {
	g.baseURL = url
	return g
}
