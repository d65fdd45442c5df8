package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/platform/httpx"
	"github.com/Tiffany-sho/travel-app/internal/platform/obs"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
		} `json:"legs"`
	} `json:"routes"`
}

// DirectionsRouteLookup is the named-place routing backend. It queries a
// Google-Directions-shaped API with the raw place names and passes the
// already human-formatted duration and distance text through verbatim.
//
// This backend requires an API key; a missing key is a configuration
// error surfaced at construction, before any network call.
type DirectionsRouteLookup struct {
	client  *httpx.Client
	baseURL string
	apiKey  string
}

func NewDirectionsRouteLookup(apiKey string) (*DirectionsRouteLookup, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("directions route lookup: api key is empty: %w", domain.ErrConfiguration)
	}

	return &DirectionsRouteLookup{
		client:  httpx.NewClient(10*time.Second, ""),
		baseURL: "https://maps.googleapis.com/maps/api/directions/json",
		apiKey:  apiKey,
	}, nil
}

func (d *DirectionsRouteLookup) NeedsCoordinates() bool { return false }

// mode maps a transport mode onto a Directions travel mode, defaulting to
// driving.
func (d *DirectionsRouteLookup) mode(mode domain.TransportMode) string {
	switch mode {
	case domain.ModeTransit:
		return "transit"
	case domain.ModeWalking:
		return "walking"
	case domain.ModeCycling:
		return "bicycling"
	default:
		return "driving"
	}
}

// Route fetches one leg. Status "NOT_FOUND" maps to ErrPlaceNotFound,
// "ZERO_RESULTS" to ErrRouteNotFound and any other non-"OK" status to
// ErrUpstream carrying the raw status.
func (d *DirectionsRouteLookup) Route(
	ctx context.Context,
	origin ports.Waypoint,
	destination ports.Waypoint,
	mode domain.TransportMode,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "directions.Route")(&err)

	resp, err := d.client.DoWithRetry(ctx, func() (*http.Request, error) {
		req, err := d.client.NewRequest(ctx, http.MethodGet, d.baseURL, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("origin", origin.Name)
		q.Set("destination", destination.Name)
		q.Set("mode", d.mode(mode))
		q.Set("key", d.apiKey)
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("directions route: %w: %w", domain.ErrCommunication, err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("directions route: decode response: %w: %w", domain.ErrCommunication, err)
	}

	switch decoded.Status {
	case "OK":
	case "NOT_FOUND":
		return ports.RouteResult{}, fmt.Errorf("directions route: status=NOT_FOUND: %w", domain.ErrPlaceNotFound)
	case "ZERO_RESULTS":
		return ports.RouteResult{}, fmt.Errorf("directions route: status=ZERO_RESULTS: %w", domain.ErrRouteNotFound)
	default:
		return ports.RouteResult{}, fmt.Errorf("directions route: status=%q: %w", decoded.Status, domain.ErrUpstream)
	}

	if len(decoded.Routes) == 0 || len(decoded.Routes[0].Legs) == 0 {
		return ports.RouteResult{}, fmt.Errorf("directions route: empty route list: %w", domain.ErrRouteNotFound)
	}

	leg := decoded.Routes[0].Legs[0]
	return ports.RouteResult{
		Formatted:    true,
		DurationText: leg.Duration.Text,
		DistanceText: leg.Distance.Text,
	}, nil
}

// WithBaseURL points the lookup at a different host (tests).
func (d *DirectionsRouteLookup) WithBaseURL(url string) *DirectionsRouteLookup {
	d.baseURL = url
	return d
}
