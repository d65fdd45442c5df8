package ports

import (
	"context"

	"github.com/Tiffany-sho/travel-app/internal/domain"
)

// Contract for resolving a free-text place name to coordinates.
// Implementations take the first candidate of the external service and
// return domain.ErrPlaceNotFound when the candidate list is empty.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (domain.Coordinates, error)
}
