package route

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/platform/httpx"
	"github.com/Tiffany-sho/travel-app/internal/platform/obs"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// OSRMRouteLookup is the coordinate-pair routing backend. It queries an
// OSRM route endpoint with two geocoded coordinates and returns raw
// seconds/meters for the caller to format. No credential is required.
type OSRMRouteLookup struct {
	client  *httpx.Client
	baseURL string
}

func NewOSRMRouteLookup(baseURL string) *OSRMRouteLookup {
	if baseURL == "" {
		baseURL = "https://router.project-osrm.org"
	}
	return &OSRMRouteLookup{
		client:  httpx.NewClient(10*time.Second, ""),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (o *OSRMRouteLookup) NeedsCoordinates() bool { return true }

// profile maps a transport mode onto an OSRM routing profile, defaulting
// to driving.
func (o *OSRMRouteLookup) profile(mode domain.TransportMode) string {
	switch mode {
	case domain.ModeWalking:
		return "walking"
	case domain.ModeCycling:
		return "cycling"
	default:
		return "driving"
	}
}

// Route fetches one leg. A non-Ok code or an empty route list maps to
// domain.ErrRouteNotFound; transport failures to domain.ErrCommunication.
func (o *OSRMRouteLookup) Route(
	ctx context.Context,
	origin ports.Waypoint,
	destination ports.Waypoint,
	mode domain.TransportMode,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f",
		o.baseURL,
		o.profile(mode),
		origin.Coords.Lon, origin.Coords.Lat,
		destination.Coords.Lon, destination.Coords.Lat,
	)

	resp, err := o.client.DoWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.client.NewRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("overview", "false")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("osrm route: %w: %w", domain.ErrCommunication, err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("osrm route: decode response: %w: %w", domain.ErrCommunication, err)
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf("osrm route: code=%q routes=%d: %w", decoded.Code, len(decoded.Routes), domain.ErrRouteNotFound)
	}

	// OSRM returns float metrics; round to integers for domain consistency.
	best := decoded.Routes[0]
	return ports.RouteResult{
		DurationSeconds: int(math.Round(best.Duration)),
		DistanceMeters:  int(math.Round(best.Distance)),
	}, nil
}
