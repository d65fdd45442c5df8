package itinerary

import (
	"slices"

	"github.com/Tiffany-sho/travel-app/internal/domain"
)

// DayGroup is the set of spots sharing one visit date, in visiting order.
// Date is "" for the undecided group.
type DayGroup struct {
	Date  string
	Spots []domain.Spot
}

// Leg is a directed adjacent pair in the flattened itinerary sequence for
// which travel time/distance may be computed.
type Leg struct {
	Origin      string
	Destination string
}

// GroupAndOrder partitions spots into day groups and orders them.
//
// Spots are bucketed by visit date; within a bucket they are stable-sorted
// by visit time ascending with unset times after all set times, preserving
// insertion order among equal keys. Buckets sort by date ascending with
// the undecided ("") bucket forced last regardless of lexical order.
//
// The function is pure: it never mutates its input and calling it twice on
// the same sequence yields identical output.
func GroupAndOrder(spots []domain.Spot) []DayGroup {
	byDate := make(map[string][]domain.Spot)
	dates := make([]string, 0)
	for _, s := range spots {
		if _, ok := byDate[s.VisitDate]; !ok {
			dates = append(dates, s.VisitDate)
		}
		byDate[s.VisitDate] = append(byDate[s.VisitDate], s)
	}

	// Undecided ranks after every dated bucket even though "" sorts first
	// lexically.
	slices.SortFunc(dates, func(a, b string) int {
		if a == b {
			return 0
		}
		if a == "" {
			return 1
		}
		if b == "" {
			return -1
		}
		if a < b {
			return -1
		}
		return 1
	})

	groups := make([]DayGroup, 0, len(dates))
	for _, d := range dates {
		bucket := slices.Clone(byDate[d])
		slices.SortStableFunc(bucket, func(a, b domain.Spot) int {
			return compareVisitTimes(a.VisitTime, b.VisitTime)
		})
		groups = append(groups, DayGroup{Date: d, Spots: bucket})
	}

	return groups
}

// compareVisitTimes orders "HH:MM" strings ascending with "" after all
// set times. Equal keys return 0 so the stable sort keeps insertion order.
func compareVisitTimes(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return 1
	}
	if b == "" {
		return -1
	}
	if a < b {
		return -1
	}
	return 1
}

// Legs flattens the departure and ordered day groups into the sequence of
// adjacent travel legs. The departure leads the sequence only when it
// names a resolvable place; a leg exists only when both endpoints do.
func Legs(dep *domain.Departure, groups []DayGroup) []Leg {
	names := make([]string, 0)
	if dep != nil && dep.HasPlace() {
		names = append(names, dep.Location)
	}
	for _, g := range groups {
		for _, s := range g.Spots {
			names = append(names, s.Name)
		}
	}

	legs := make([]Leg, 0, max(len(names)-1, 0))
	for i := 0; i+1 < len(names); i++ {
		origin, destination := names[i], names[i+1]
		if origin == "" || origin == domain.UndecidedPlace || destination == "" {
			continue
		}
		legs = append(legs, Leg{Origin: origin, Destination: destination})
	}

	return legs
}
