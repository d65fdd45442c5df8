package domain

import (
	"errors"
	"testing"
)

func TestNewTripValidation(t *testing.T) {
	cases := []struct {
		name        string
		destination string
		start, end  string
	}{
		{"blank destination", "  ", "2025-06-01", "2025-06-07"},
		{"bad start date", "京都", "06/01/2025", "2025-06-07"},
		{"bad end date", "京都", "2025-06-01", "someday"},
		{"end before start", "京都", "2025-06-07", "2025-06-01"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewTrip(c.destination, c.start, c.end, ModeDriving)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNewTripDefaultsTransport(t *testing.T) {
	trip, err := NewTrip("京都", "2025-06-01", "2025-06-01", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.Transport != ModeDriving {
		t.Fatalf("transport = %q, want driving", trip.Transport)
	}
}

func TestTripContains(t *testing.T) {
	trip, err := NewTrip("京都", "2025-06-01", "2025-06-07", ModeDriving)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		date string
		want bool
	}{
		{"2025-06-01", true},
		{"2025-06-07", true},
		{"2025-06-04", true},
		{"2025-05-31", false},
		{"2025-06-08", false},
		{"not-a-date", false},
	}

	for _, c := range cases {
		if got := trip.Contains(c.date); got != c.want {
			t.Errorf("Contains(%q) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestDepartureHasPlace(t *testing.T) {
	if (Departure{Location: ""}).HasPlace() {
		t.Error("empty location must not count as a place")
	}
	if (Departure{Location: UndecidedPlace}).HasPlace() {
		t.Error("sentinel location must not count as a place")
	}
	if !(Departure{Location: "東京駅"}).HasPlace() {
		t.Error("named location must count as a place")
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategorySightseeing, CategoryFood, CategoryShopping, CategoryHotel, CategoryTransport, CategoryOther} {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	if Category("landmark").Valid() {
		t.Error("unknown category should be invalid")
	}
	if Category("").Valid() {
		t.Error("empty category should be invalid")
	}
}
