package domain

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts used throughout the itinerary. Visit dates and times are
// kept as strings so that an unset value is simply "".
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02T15:04"
)

// UndecidedPlace is the sentinel location meaning the user explicitly
// deferred choosing a place. Distinct from "" (unset).
const UndecidedPlace = "未定"

// TransportMode selects how a leg is traveled. Which modes a routing
// backend accepts depends on the backend; unknown modes fall back to the
// backend's driving equivalent.
type TransportMode string

const (
	ModeDriving TransportMode = "driving"
	ModeWalking TransportMode = "walking"
	ModeCycling TransportMode = "cycling"
	ModeTransit TransportMode = "transit"
)

// Trip is the immutable planning context created when the user starts
// planning. It is re-created only by restarting planning; downstream
// components treat it as read-only.
type Trip struct {
	Destination string
	StartDate   string
	EndDate     string
	Transport   TransportMode
}

func NewTrip(destination, startDate, endDate string, transport TransportMode) (Trip, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return Trip{}, fmt.Errorf("new trip: destination must be non-empty: %w", ErrValidation)
	}

	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return Trip{}, fmt.Errorf("new trip: start date %q: %w", startDate, ErrValidation)
	}

	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return Trip{}, fmt.Errorf("new trip: end date %q: %w", endDate, ErrValidation)
	}

	if end.Before(start) {
		return Trip{}, fmt.Errorf("new trip: end date before start date: %w", ErrValidation)
	}

	if transport == "" {
		transport = ModeDriving
	}

	return Trip{
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Transport:   transport,
	}, nil
}

// Contains reports whether a visit date falls within [StartDate, EndDate].
// An unparseable date is treated as outside the trip.
func (t Trip) Contains(date string) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}

	start, err := time.Parse(DateLayout, t.StartDate)
	if err != nil {
		return false
	}

	end, err := time.Parse(DateLayout, t.EndDate)
	if err != nil {
		return false
	}

	return !d.Before(start) && !d.After(end)
}

// Departure is the optional starting point of the itinerary. The
// departure time is three-state: set (DateTime non-empty), unset
// (DateTime empty), or explicitly undecided (DateTimeUndecided true,
// independent of the DateTime value).
type Departure struct {
	Location          string
	DateTime          string
	DateTimeUndecided bool
}

// HasPlace reports whether the departure names a resolvable location,
// i.e. it can act as the origin of the first travel leg.
func (d Departure) HasPlace() bool {
	return d.Location != "" && d.Location != UndecidedPlace
}
