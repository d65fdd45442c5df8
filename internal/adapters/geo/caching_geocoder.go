package geo

import (
	"context"
	"errors"
	"log"

	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

// GeocodeCache stores place -> coordinate mappings keyed by the exact
// (normalized) query string. Place coordinates change rarely, so entries
// are valid for at least an hour; expiry is the cache's concern.
type GeocodeCache interface {
	Get(ctx context.Context, place string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, place string, c domain.Coordinates) error
}

// CachingGeocoder checks a persistent cache before delegating to the
// wrapped geocoder. Cache write failures are logged, not fatal.
type CachingGeocoder struct {
	next  ports.Geocoder
	cache GeocodeCache
}

func NewCachingGeocoder(next ports.Geocoder, cache GeocodeCache) *CachingGeocoder {
	return &CachingGeocoder{next: next, cache: cache}
}

func (g *CachingGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	norm := normalize(place)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: place must be non-empty")
	}

	if g.cache != nil {
		coords, ok, err := g.cache.Get(ctx, norm)
		if err != nil {
			log.Printf("geocode cache read failed place=%q err=%v", norm, err)
		} else if ok {
			return coords, nil
		}
	}

	coords, err := g.next.Geocode(ctx, norm)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, norm, coords); err != nil {
			log.Printf("geocode cache write failed place=%q err=%v", norm, err)
		}
	}

	return coords, nil
}
