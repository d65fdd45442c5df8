package route

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

func TestDirectionsRequiresAPIKey(t *testing.T) {
	if _, err := NewDirectionsRouteLookup("   "); !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestDirectionsRoutePassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("origin") != "東京駅" || q.Get("destination") != "成田空港" {
			t.Errorf("endpoints = %q -> %q", q.Get("origin"), q.Get("destination"))
		}
		if q.Get("mode") != "transit" {
			t.Errorf("mode = %q, want transit", q.Get("mode"))
		}
		if q.Get("key") != "test-key" {
			t.Errorf("key = %q", q.Get("key"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"routes": [{"legs": [{
				"duration": {"text": "1時間3分"},
				"distance": {"text": "59.7 km"}
			}]}]
		}`))
	}))
	defer server.Close()

	lookup, err := NewDirectionsRouteLookup("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lookup = lookup.WithBaseURL(server.URL)

	result, err := lookup.Route(
		context.Background(),
		ports.Waypoint{Name: "東京駅"},
		ports.Waypoint{Name: "成田空港"},
		domain.ModeTransit,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Formatted {
		t.Fatal("named-place backend must mark the result as pre-formatted")
	}
	if result.DurationText != "1時間3分" || result.DistanceText != "59.7 km" {
		t.Fatalf("texts not passed through: %+v", result)
	}
}

func TestDirectionsRouteStatusMapping(t *testing.T) {
	cases := []struct {
		status string
		want   error
	}{
		{"NOT_FOUND", domain.ErrPlaceNotFound},
		{"ZERO_RESULTS", domain.ErrRouteNotFound},
		{"REQUEST_DENIED", domain.ErrUpstream},
		{"OVER_QUERY_LIMIT", domain.ErrUpstream},
	}

	for _, c := range cases {
		status := c.status
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `{"status":%q,"routes":[]}`, status)
		}))

		lookup, err := NewDirectionsRouteLookup("test-key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lookup = lookup.WithBaseURL(server.URL)

		_, err = lookup.Route(
			context.Background(),
			ports.Waypoint{Name: "A"},
			ports.Waypoint{Name: "B"},
			domain.ModeDriving,
		)
		if !errors.Is(err, c.want) {
			t.Errorf("status %q: expected %v, got %v", c.status, c.want, err)
		}
		server.Close()
	}
}

func TestDirectionsRouteEmptyLegs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","routes":[]}`))
	}))
	defer server.Close()

	lookup, err := NewDirectionsRouteLookup("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lookup = lookup.WithBaseURL(server.URL)

	_, err = lookup.Route(
		context.Background(),
		ports.Waypoint{Name: "A"},
		ports.Waypoint{Name: "B"},
		domain.ModeDriving,
	)
	if !errors.Is(err, domain.ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}
