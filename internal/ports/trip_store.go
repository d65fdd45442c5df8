package ports

import (
	"context"

	"github.com/Tiffany-sho/travel-app/internal/domain"
)

// TripRecord is the persisted session state for one planning session:
// the immutable trip plus the mutable spot collection and departure.
type TripRecord struct {
	ID        string
	Trip      domain.Trip
	Spots     []domain.Spot
	Departure *domain.Departure
	// EditingID carries the inline-edit lock across requests so that a
	// reorder arriving mid-edit is still rejected.
	EditingID string
}

// Port: a boundary for loading and saving trip session records.
// Load returns domain.ErrNoActiveTrip when no record exists for the id;
// the caller is responsible for redirecting to trip creation.
type TripStore interface {
	Save(ctx context.Context, rec TripRecord) error
	Load(ctx context.Context, id string) (TripRecord, error)
}
