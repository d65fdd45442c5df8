package ports

import (
	"context"

	"github.com/Tiffany-sho/travel-app/internal/domain"
)

// Waypoint is one endpoint of a route query. Coordinates are only
// populated when the backend asked for them (NeedsCoordinates).
type Waypoint struct {
	Name   string
	Coords domain.Coordinates
}

// RouteResult is one leg's travel info as returned by a backend.
//
// Formatted backends hand back human text verbatim in DurationText and
// DistanceText; raw backends fill DurationSeconds and DistanceMeters and
// leave formatting to the caller.
type RouteResult struct {
	Formatted       bool
	DurationText    string
	DistanceText    string
	DurationSeconds int
	DistanceMeters  int
}

// RouteLookup is the single routing capability both backends implement.
// The travel-leg orchestrator is written against this interface and never
// against a concrete backend.
type RouteLookup interface {
	// NeedsCoordinates reports whether waypoints must carry geocoded
	// coordinates (coordinate-pair backends) or names alone suffice
	// (named-place backends).
	NeedsCoordinates() bool

	// Route returns travel duration and distance for one leg.
	// Unsupported or empty modes fall back to the backend's driving
	// equivalent.
	Route(ctx context.Context, origin, destination Waypoint, mode domain.TransportMode) (RouteResult, error)
}
