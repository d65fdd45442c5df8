package route

import (
	"context"
	"fmt"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

type MockLeg struct {
	From, To string
	Mode     domain.TransportMode
	Meters   int
	Seconds  int
}

// MockRouteLookup serves fixed leg results from memory for tests and
// offline runs.
type MockRouteLookup struct {
	m map[string]ports.RouteResult
}

func NewMockRouteLookup(legs []MockLeg) *MockRouteLookup {
	m := make(map[string]ports.RouteResult, len(legs))
	for _, l := range legs {
		key := l.From + "|" + l.To + "|" + string(l.Mode)
		m[key] = ports.RouteResult{DistanceMeters: l.Meters, DurationSeconds: l.Seconds}
	}
	return &MockRouteLookup{m: m}
}

func (p *MockRouteLookup) NeedsCoordinates() bool { return false }

func (p *MockRouteLookup) Route(
	ctx context.Context,
	origin ports.Waypoint,
	destination ports.Waypoint,
	mode domain.TransportMode,
) (ports.RouteResult, error) {
	key := origin.Name + "|" + destination.Name + "|" + string(mode)
	r, ok := p.m[key]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("missing leg %q -> %q (%s): %w", origin.Name, destination.Name, mode, domain.ErrRouteNotFound)
	}

	return r, nil
}
