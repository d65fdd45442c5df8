package route

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

func osrmWaypoints() (ports.Waypoint, ports.Waypoint) {
	origin := ports.Waypoint{Name: "東京駅", Coords: domain.Coordinates{Lon: 139.767, Lat: 35.681}}
	destination := ports.Waypoint{Name: "成田空港", Coords: domain.Coordinates{Lon: 140.392, Lat: 35.771}}
	return origin, destination
}

func TestOSRMRouteOk(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"duration":3599.6,"distance":1999.5}]}`))
	}))
	defer server.Close()

	lookup := NewOSRMRouteLookup(server.URL)
	origin, destination := osrmWaypoints()

	result, err := lookup.Route(context.Background(), origin, destination, domain.ModeDriving)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(gotPath, "/route/v1/driving/") {
		t.Fatalf("path = %q, want driving profile", gotPath)
	}
	if result.Formatted {
		t.Fatal("coordinate backend must return raw metrics")
	}
	if result.DurationSeconds != 3600 || result.DistanceMeters != 2000 {
		t.Fatalf("metrics = %d s / %d m, want rounded 3600 / 2000", result.DurationSeconds, result.DistanceMeters)
	}
}

func TestOSRMRouteProfileMapping(t *testing.T) {
	cases := []struct {
		mode domain.TransportMode
		want string
	}{
		{domain.ModeWalking, "walking"},
		{domain.ModeCycling, "cycling"},
		{domain.ModeDriving, "driving"},
		{domain.ModeTransit, "driving"},
	}

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"duration":60,"distance":100}]}`))
	}))
	defer server.Close()

	lookup := NewOSRMRouteLookup(server.URL)
	origin, destination := osrmWaypoints()

	for _, c := range cases {
		if _, err := lookup.Route(context.Background(), origin, destination, c.mode); err != nil {
			t.Fatalf("%s: unexpected error: %v", c.mode, err)
		}
		if !strings.HasPrefix(gotPath, "/route/v1/"+c.want+"/") {
			t.Errorf("%s: path = %q, want profile %q", c.mode, gotPath, c.want)
		}
	}
}

func TestOSRMRouteNoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer server.Close()

	lookup := NewOSRMRouteLookup(server.URL)
	origin, destination := osrmWaypoints()

	_, err := lookup.Route(context.Background(), origin, destination, domain.ModeDriving)
	if !errors.Is(err, domain.ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestOSRMRouteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadRequest)
	}))
	defer server.Close()

	lookup := NewOSRMRouteLookup(server.URL)
	origin, destination := osrmWaypoints()

	_, err := lookup.Route(context.Background(), origin, destination, domain.ModeDriving)
	if !errors.Is(err, domain.ErrCommunication) {
		t.Fatalf("expected ErrCommunication, got %v", err)
	}
}
