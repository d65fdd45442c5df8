package itinerary

import (
	"reflect"
	"testing"

	"github.com/Tiffany-sho/travel-app/internal/domain"
)

func TestGroupAndOrderBucketOrder(t *testing.T) {
	spots := []domain.Spot{
		{ID: "1", Name: "A", VisitDate: "2025-06-02"},
		{ID: "2", Name: "B", VisitDate: "2025-06-01"},
		{ID: "3", Name: "C", VisitDate: ""},
	}

	groups := GroupAndOrder(spots)

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Date != "2025-06-01" || groups[0].Spots[0].Name != "B" {
		t.Fatalf("first group = %q %v", groups[0].Date, groups[0].Spots)
	}
	if groups[1].Date != "2025-06-02" || groups[1].Spots[0].Name != "A" {
		t.Fatalf("second group = %q %v", groups[1].Date, groups[1].Spots)
	}
	if groups[2].Date != "" || groups[2].Spots[0].Name != "C" {
		t.Fatalf("third group = %q %v", groups[2].Date, groups[2].Spots)
	}
}

func TestGroupAndOrderUndecidedAlwaysLast(t *testing.T) {
	spots := []domain.Spot{
		{ID: "1", Name: "undated"},
		{ID: "2", Name: "dated", VisitDate: "2025-06-03"},
	}

	groups := GroupAndOrder(spots)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[len(groups)-1].Date != "" {
		t.Fatalf("undecided group must sort last, got order %q, %q", groups[0].Date, groups[1].Date)
	}
}

func TestGroupAndOrderTimeOrderingWithinDay(t *testing.T) {
	// Two unset-time spots must keep their relative insertion order.
	spots := []domain.Spot{
		{ID: "1", Name: "A", VisitDate: "2025-06-01", VisitTime: "09:00"},
		{ID: "2", Name: "B", VisitDate: "2025-06-01", VisitTime: ""},
		{ID: "3", Name: "C", VisitDate: "2025-06-01", VisitTime: "14:00"},
		{ID: "4", Name: "D", VisitDate: "2025-06-01", VisitTime: ""},
	}

	groups := GroupAndOrder(spots)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	got := make([]string, 0, 4)
	for _, s := range groups[0].Spots {
		got = append(got, s.Name)
	}
	want := []string{"A", "C", "B", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestGroupAndOrderDeterministic(t *testing.T) {
	spots := []domain.Spot{
		{ID: "1", Name: "A", VisitDate: "2025-06-02", VisitTime: "10:00"},
		{ID: "2", Name: "B", VisitDate: ""},
		{ID: "3", Name: "C", VisitDate: "2025-06-01"},
		{ID: "4", Name: "D", VisitDate: "2025-06-02"},
		{ID: "5", Name: "E", VisitDate: "2025-06-02", VisitTime: "10:00"},
	}

	first := GroupAndOrder(spots)
	second := GroupAndOrder(spots)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two runs disagree:\n%v\n%v", first, second)
	}
}

func TestGroupAndOrderDoesNotMutateInput(t *testing.T) {
	spots := []domain.Spot{
		{ID: "1", Name: "A", VisitDate: "2025-06-02"},
		{ID: "2", Name: "B", VisitDate: "2025-06-01"},
	}
	original := make([]domain.Spot, len(spots))
	copy(original, spots)

	GroupAndOrder(spots)

	if !reflect.DeepEqual(spots, original) {
		t.Fatalf("input mutated: %v, want %v", spots, original)
	}
}

func TestLegsIncludesDepartureWithPlace(t *testing.T) {
	dep := &domain.Departure{Location: "東京駅"}
	groups := []DayGroup{
		{Date: "2025-06-01", Spots: []domain.Spot{{ID: "1", Name: "浅草寺"}, {ID: "2", Name: "スカイツリー"}}},
	}

	legs := Legs(dep, groups)

	want := []Leg{
		{Origin: "東京駅", Destination: "浅草寺"},
		{Origin: "浅草寺", Destination: "スカイツリー"},
	}
	if !reflect.DeepEqual(legs, want) {
		t.Fatalf("legs = %v, want %v", legs, want)
	}
}

func TestLegsSkipsUndecidedDeparture(t *testing.T) {
	dep := &domain.Departure{Location: domain.UndecidedPlace}
	groups := []DayGroup{
		{Date: "2025-06-01", Spots: []domain.Spot{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}},
	}

	legs := Legs(dep, groups)

	if len(legs) != 1 {
		t.Fatalf("expected 1 leg, got %d (%v)", len(legs), legs)
	}
	if legs[0].Origin != "A" || legs[0].Destination != "B" {
		t.Fatalf("leg = %v", legs[0])
	}
}

func TestLegsSpanDayGroups(t *testing.T) {
	groups := []DayGroup{
		{Date: "2025-06-01", Spots: []domain.Spot{{ID: "1", Name: "A"}}},
		{Date: "2025-06-02", Spots: []domain.Spot{{ID: "2", Name: "B"}}},
		{Date: "", Spots: []domain.Spot{{ID: "3", Name: "C"}}},
	}

	legs := Legs(nil, groups)

	want := []Leg{
		{Origin: "A", Destination: "B"},
		{Origin: "B", Destination: "C"},
	}
	if !reflect.DeepEqual(legs, want) {
		t.Fatalf("legs = %v, want %v", legs, want)
	}
}
