package mapview

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

// Point is one resolved marker on the map.
type Point struct {
	Name   string
	Coords domain.Coordinates
}

// Bounds is the lat/lon box fitted around all resolved points.
type Bounds struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// View is the rendering instruction handed to the map surface.
//
// Fit is false when nothing resolved (the viewport stays where it is);
// CloseZoom is set when exactly one point resolved.
type View struct {
	Fit       bool
	CloseZoom bool
	Center    domain.Coordinates
	Bounds    Bounds
	Points    []Point
}

type cachedCoords struct {
	coords    domain.Coordinates
	fetchedAt time.Time
}

// MapView resolves display coordinates for the destination, departure
// and spot list, and fits the viewport to the resolved points.
//
// Display geocoding is lenient: individual failures skip the marker
// instead of failing the view. Results go through an in-memory TTL cache
// that is looser and entirely separate from the travel-leg cache.
type MapView struct {
	geocoder ports.Geocoder
	ttl      time.Duration

	mu    sync.Mutex
	cache map[string]cachedCoords
}

func New(geocoder ports.Geocoder, ttl time.Duration) *MapView {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &MapView{
		geocoder: geocoder,
		ttl:      ttl,
		cache:    make(map[string]cachedCoords),
	}
}

// Build resolves the destination (for centering) plus every named place
// in the itinerary and returns the fitted view.
func (m *MapView) Build(
	ctx context.Context,
	destination string,
	dep *domain.Departure,
	spots []domain.Spot,
) View {
	names := make([]string, 0, 2+len(spots))
	if destination != "" {
		names = append(names, destination)
	}
	if dep != nil && dep.HasPlace() {
		names = append(names, dep.Location)
	}
	for _, s := range spots {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}

	points := make([]Point, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		coords, err := m.resolve(ctx, name)
		if err != nil {
			log.Printf("map geocode skipped place=%q err=%v", name, err)
			continue
		}
		points = append(points, Point{Name: name, Coords: coords})
	}

	if len(points) == 0 {
		return View{}
	}

	view := View{
		Fit:    true,
		Center: points[0].Coords,
		Points: points,
	}

	if len(points) == 1 {
		view.CloseZoom = true
		view.Bounds = Bounds{
			MinLat: points[0].Coords.Lat, MaxLat: points[0].Coords.Lat,
			MinLon: points[0].Coords.Lon, MaxLon: points[0].Coords.Lon,
		}
		return view
	}

	b := Bounds{
		MinLat: points[0].Coords.Lat, MaxLat: points[0].Coords.Lat,
		MinLon: points[0].Coords.Lon, MaxLon: points[0].Coords.Lon,
	}
	for _, p := range points[1:] {
		if p.Coords.Lat < b.MinLat {
			b.MinLat = p.Coords.Lat
		}
		if p.Coords.Lat > b.MaxLat {
			b.MaxLat = p.Coords.Lat
		}
		if p.Coords.Lon < b.MinLon {
			b.MinLon = p.Coords.Lon
		}
		if p.Coords.Lon > b.MaxLon {
			b.MaxLon = p.Coords.Lon
		}
	}
	view.Bounds = b

	return view
}

func (m *MapView) resolve(ctx context.Context, name string) (domain.Coordinates, error) {
	m.mu.Lock()
	if entry, ok := m.cache[name]; ok && time.Since(entry.fetchedAt) < m.ttl {
		m.mu.Unlock()
		return entry.coords, nil
	}
	m.mu.Unlock()

	coords, err := m.geocoder.Geocode(ctx, name)
	if err != nil {
		return domain.Coordinates{}, err
	}

	m.mu.Lock()
	m.cache[name] = cachedCoords{coords: coords, fetchedAt: time.Now()}
	m.mu.Unlock()

	return coords, nil
}
