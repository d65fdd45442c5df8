package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/Tiffany-sho/travel-app/internal/api/dto"
	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/itinerary"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

// TripHandler exposes trip session creation and retrieval.
type TripHandler struct {
	Store ports.TripStore
}

// Create starts a new planning session. The trip is immutable once
// created; re-planning means creating a new trip.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	trip, err := domain.NewTrip(req.Destination, req.StartDate, req.EndDate, domain.TransportMode(req.Transport))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	rec := ports.TripRecord{
		ID:    uuid.NewString(),
		Trip:  trip,
		Spots: []domain.Spot{},
	}
	if err := h.Store.Save(r.Context(), rec); err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, tripResponse(rec.ID, trip))
}

// Get returns the full session state: trip, departure, ordered day
// groups and the flattened leg sequence.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, it, err := loadItinerary(r.Context(), h.Store, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, tripDetailResponse(rec.ID, it))
}

// SetDeparture replaces the whole departure record.
func (h *TripHandler) SetDeparture(w http.ResponseWriter, r *http.Request) {
	var req dto.DepartureRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	rec, it, err := loadItinerary(r.Context(), h.Store, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := it.SetDeparture(req.Location, req.DateTime, req.DateTimeUndecided); err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := saveItinerary(r.Context(), h.Store, rec, it); err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, departureResponse(it.Departure()))
}

func tripResponse(id string, t domain.Trip) dto.TripResponse {
	return dto.TripResponse{
		TripID:      id,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Transport:   string(t.Transport),
	}
}

func departureResponse(d *domain.Departure) *dto.DepartureResponse {
	if d == nil {
		return nil
	}
	return &dto.DepartureResponse{
		Location:          d.Location,
		DateTime:          d.DateTime,
		DateTimeUndecided: d.DateTimeUndecided,
	}
}

func spotResponse(s domain.Spot) dto.SpotResponse {
	return dto.SpotResponse{
		SpotID:    s.ID,
		Name:      s.Name,
		Category:  string(s.Category),
		Memo:      s.Memo,
		VisitDate: s.VisitDate,
		VisitTime: s.VisitTime,
	}
}

func tripDetailResponse(id string, it *itinerary.Itinerary) dto.TripDetailResponse {
	groups := it.Groups()

	days := make([]dto.DayGroupResponse, 0, len(groups))
	for _, g := range groups {
		spots := make([]dto.SpotResponse, 0, len(g.Spots))
		for _, s := range g.Spots {
			spots = append(spots, spotResponse(s))
		}
		days = append(days, dto.DayGroupResponse{Date: g.Date, Spots: spots})
	}

	legs := itinerary.Legs(it.Departure(), groups)
	legPairs := make([]dto.LegPairResponse, 0, len(legs))
	for _, l := range legs {
		legPairs = append(legPairs, dto.LegPairResponse{Origin: l.Origin, Destination: l.Destination})
	}

	return dto.TripDetailResponse{
		Trip:      tripResponse(id, it.Trip()),
		Departure: departureResponse(it.Departure()),
		Days:      days,
		Legs:      legPairs,
		Editing:   it.Editing(),
	}
}
