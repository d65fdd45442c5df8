package itinerary

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tiffany-sho/travel-app/internal/domain"
)

// SpotDraft is the user input for a new spot.
type SpotDraft struct {
	Name      string
	Category  domain.Category
	Memo      string
	VisitDate string
	VisitTime string
}

// SpotPatch is a partial update. Nil fields are left untouched; provided
// fields replace the stored value wholesale.
type SpotPatch struct {
	Name      *string
	Category  *domain.Category
	Memo      *string
	VisitDate *string
	VisitTime *string
}

// Itinerary owns the spot collection and departure record for one trip.
//
// Mutations validate and return explicit errors (domain.ErrValidation,
// domain.ErrNotFound) rather than silently no-opping, so callers can
// choose whether to surface feedback. Deletion alone stays idempotent.
//
// The aggregate is not safe for concurrent use; the HTTP layer serializes
// access by loading and saving one record per request.
type Itinerary struct {
	trip      domain.Trip
	spots     []domain.Spot
	departure *domain.Departure
	editingID string

	// newID is overridable in tests for deterministic identifiers.
	newID func() string
}

func New(trip domain.Trip) *Itinerary {
	return &Itinerary{
		trip:  trip,
		newID: uuid.NewString,
	}
}

// Restore rebuilds the aggregate from a persisted session record. The
// editing lock is view state and is never restored.
func Restore(trip domain.Trip, spots []domain.Spot, dep *domain.Departure) *Itinerary {
	it := New(trip)
	it.spots = slices.Clone(spots)
	if dep != nil {
		d := *dep
		it.departure = &d
	}
	return it
}

func (it *Itinerary) Trip() domain.Trip { return it.trip }

// Spots returns the collection in insertion order. The slice is a copy.
func (it *Itinerary) Spots() []domain.Spot { return slices.Clone(it.spots) }

// Departure returns a copy of the departure record, or nil when unset.
func (it *Itinerary) Departure() *domain.Departure {
	if it.departure == nil {
		return nil
	}
	d := *it.departure
	return &d
}

// Groups derives the ordered day groups for the current collection.
func (it *Itinerary) Groups() []DayGroup { return GroupAndOrder(it.spots) }

// Legs derives the flattened travel-leg sequence for the current state.
func (it *Itinerary) Legs() []Leg { return Legs(it.departure, it.Groups()) }

// AddSpot validates the draft, assigns a fresh identifier and appends the
// spot to the end of the collection. Spots without a visit date enter the
// undecided bucket.
func (it *Itinerary) AddSpot(draft SpotDraft) (domain.Spot, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return domain.Spot{}, fmt.Errorf("add spot: name must be non-empty: %w", domain.ErrValidation)
	}

	category := draft.Category
	if category == "" {
		category = domain.DefaultCategory
	}
	if !category.Valid() {
		return domain.Spot{}, fmt.Errorf("add spot: unknown category %q: %w", category, domain.ErrValidation)
	}

	if err := it.validateSchedule(draft.VisitDate, draft.VisitTime); err != nil {
		return domain.Spot{}, fmt.Errorf("add spot: %w", err)
	}

	spot := domain.Spot{
		ID:        it.newID(),
		Name:      name,
		Category:  category,
		Memo:      draft.Memo,
		VisitDate: draft.VisitDate,
		VisitTime: draft.VisitTime,
	}
	it.spots = append(it.spots, spot)

	return spot, nil
}

// UpdateSpot replaces the fields provided in the patch and leaves omitted
// fields untouched.
func (it *Itinerary) UpdateSpot(id string, patch SpotPatch) (domain.Spot, error) {
	idx := it.indexOf(id)
	if idx < 0 {
		return domain.Spot{}, fmt.Errorf("update spot %q: %w", id, domain.ErrNotFound)
	}

	next := it.spots[idx]
	if patch.Name != nil {
		next.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		next.Category = *patch.Category
	}
	if patch.Memo != nil {
		next.Memo = *patch.Memo
	}
	if patch.VisitDate != nil {
		next.VisitDate = *patch.VisitDate
	}
	if patch.VisitTime != nil {
		next.VisitTime = *patch.VisitTime
	}

	if next.Name == "" {
		return domain.Spot{}, fmt.Errorf("update spot %q: name must be non-empty: %w", id, domain.ErrValidation)
	}
	if !next.Category.Valid() {
		return domain.Spot{}, fmt.Errorf("update spot %q: unknown category %q: %w", id, next.Category, domain.ErrValidation)
	}
	if err := it.validateSchedule(next.VisitDate, next.VisitTime); err != nil {
		return domain.Spot{}, fmt.Errorf("update spot %q: %w", id, err)
	}

	it.spots[idx] = next
	return next, nil
}

// DeleteSpot removes by identity. Deleting an absent id is a no-op:
// deletion is idempotent.
func (it *Itinerary) DeleteSpot(id string) {
	idx := it.indexOf(id)
	if idx < 0 {
		return
	}
	it.spots = slices.Delete(it.spots, idx, idx+1)
	if it.editingID == id {
		it.editingID = ""
	}
}

// ReorderSpot moves a spot to toIndex within the insertion-order
// collection. Date/time ordering always supersedes insertion order in the
// derived groups, so a manual move only changes the relative order of
// spots whose grouping keys tie (undecided dates, or same date and time).
// Reordering is rejected while a spot is in inline edit.
func (it *Itinerary) ReorderSpot(id string, toIndex int) error {
	if it.Editing() {
		return fmt.Errorf("reorder spot %q: locked while editing: %w", id, domain.ErrValidation)
	}

	idx := it.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("reorder spot %q: %w", id, domain.ErrNotFound)
	}
	if toIndex < 0 || toIndex >= len(it.spots) {
		return fmt.Errorf("reorder spot %q: index %d out of range: %w", id, toIndex, domain.ErrValidation)
	}

	spot := it.spots[idx]
	it.spots = slices.Delete(it.spots, idx, idx+1)
	it.spots = slices.Insert(it.spots, toIndex, spot)
	return nil
}

// SetDeparture replaces the whole departure record. The location must be
// non-blank or the explicit undecided sentinel.
func (it *Itinerary) SetDeparture(location, datetime string, datetimeUndecided bool) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return fmt.Errorf("set departure: location must be non-empty: %w", domain.ErrValidation)
	}

	if datetime != "" {
		if _, err := time.Parse(domain.DateTimeLayout, datetime); err != nil {
			return fmt.Errorf("set departure: datetime %q: %w", datetime, domain.ErrValidation)
		}
	}

	it.departure = &domain.Departure{
		Location:          location,
		DateTime:          datetime,
		DateTimeUndecided: datetimeUndecided,
	}
	return nil
}

// BeginEdit marks a spot as being edited inline, which locks drag
// reordering of the whole list until EndEdit.
func (it *Itinerary) BeginEdit(id string) error {
	if it.indexOf(id) < 0 {
		return fmt.Errorf("begin edit %q: %w", id, domain.ErrNotFound)
	}
	it.editingID = id
	return nil
}

func (it *Itinerary) EndEdit() { it.editingID = "" }

// Editing reports whether any spot is in inline-edit mode, which is the
// queryable lock the presentation layer consults before allowing drag
// reordering.
func (it *Itinerary) Editing() bool { return it.editingID != "" }

// EditingSpotID returns the id of the spot in inline edit, or "".
func (it *Itinerary) EditingSpotID() string { return it.editingID }

func (it *Itinerary) indexOf(id string) int {
	return slices.IndexFunc(it.spots, func(s domain.Spot) bool { return s.ID == id })
}

// validateSchedule checks the optional visit date and time. A set date
// must parse and fall within the trip range; silently clamping would
// hide user intent, so out-of-range dates are rejected.
func (it *Itinerary) validateSchedule(date, visitTime string) error {
	if date != "" {
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			return fmt.Errorf("visit date %q: %w", date, domain.ErrValidation)
		}
		if !it.trip.Contains(date) {
			return fmt.Errorf("visit date %q outside trip range: %w", date, domain.ErrValidation)
		}
	}

	if visitTime != "" {
		if _, err := time.Parse(domain.TimeLayout, visitTime); err != nil {
			return fmt.Errorf("visit time %q: %w", visitTime, domain.ErrValidation)
		}
	}

	return nil
}
