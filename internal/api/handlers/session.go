package handlers

import (
	"context"

	"github.com/Tiffany-sho/travel-app/internal/itinerary"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

// loadItinerary rebuilds the aggregate from the stored session record.
func loadItinerary(ctx context.Context, store ports.TripStore, tripID string) (ports.TripRecord, *itinerary.Itinerary, error) {
	rec, err := store.Load(ctx, tripID)
	if err != nil {
		return ports.TripRecord{}, nil, err
	}

	it := itinerary.Restore(rec.Trip, rec.Spots, rec.Departure)
	if rec.EditingID != "" {
		// A stale lock on a since-deleted spot is simply dropped.
		_ = it.BeginEdit(rec.EditingID)
	}

	return rec, it, nil
}

// saveItinerary writes the aggregate state back to the session record.
func saveItinerary(ctx context.Context, store ports.TripStore, rec ports.TripRecord, it *itinerary.Itinerary) error {
	rec.Spots = it.Spots()
	rec.Departure = it.Departure()
	rec.EditingID = it.EditingSpotID()
	return store.Save(ctx, rec)
}
