package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/platform/httpx"
	"github.com/Tiffany-sho/travel-app/internal/platform/obs"
)

type orsGeocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// ORSGeocoder resolves place names using the OpenRouteService geocode
// search endpoint (/geocode/search), taking the first candidate.
//
// The geocoder is stateless and safe for concurrent use.
type ORSGeocoder struct {
	client  *httpx.Client
	baseURL string
}

func NewORSGeocoder(apiKey string) (*ORSGeocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ORS geocoder: api key is empty: %w", domain.ErrConfiguration)
	}

	return &ORSGeocoder{
		client:  httpx.NewClient(10*time.Second, apiKey),
		baseURL: "https://api.openrouteservice.org",
	}, nil
}

// Geocode resolves one place name. An empty candidate list maps to
// domain.ErrPlaceNotFound; transport failures to domain.ErrCommunication.
func (g *ORSGeocoder) Geocode(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := normalize(place)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: place must be non-empty")
	}

	endpoint := g.baseURL + "/geocode/search"

	resp, err := g.client.DoWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.client.NewRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w: %w", norm, domain.ErrCommunication, err)
	}
	defer resp.Body.Close()

	var decoded orsGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w: %w", norm, domain.ErrCommunication, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: no results: %w", norm, domain.ErrPlaceNotFound)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: invalid coordinate format: %w", norm, domain.ErrCommunication)
	}

	return domain.Coordinates{Lon: coords[0], Lat: coords[1]}, nil
}

// WithBaseURL points the geocoder at a different host (tests).
func (g *ORSGeocoder) WithBaseURL(url string) *ORSGeocoder {
	g.baseURL = strings.TrimRight(url, "/")
	return g
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
