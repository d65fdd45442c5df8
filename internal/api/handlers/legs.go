package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Tiffany-sho/travel-app/internal/api/dto"
	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/itinerary"
	"github.com/Tiffany-sho/travel-app/internal/ports"
	"github.com/Tiffany-sho/travel-app/internal/travel"
)

// LegHandler exposes the per-leg travel-info state machine.
type LegHandler struct {
	Store        ports.TripStore
	Orchestrator *travel.Orchestrator
}

// List returns the current cached state for every leg of the itinerary
// in the requested mode (default: the trip's transport preference).
// Listing never triggers fetches; those are user actions.
func (h *LegHandler) List(w http.ResponseWriter, r *http.Request) {
	_, it, err := loadItinerary(r.Context(), h.Store, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	mode := domain.TransportMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = it.Trip().Transport
	}

	legs := it.Legs()
	res := dto.ListLegsResponse{Legs: make([]dto.LegInfoResponse, 0, len(legs))}
	for _, l := range legs {
		key := travel.LegKey{Origin: l.Origin, Destination: l.Destination, Mode: mode}
		res.Legs = append(res.Legs, legInfoResponse(key, h.Orchestrator.Info(key), h.Orchestrator.CanFetch(key)))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Search triggers one fetch for one leg. Route failures are part of the
// leg's state, rendered inline, so they still answer 200 with the Failed
// info; only gating violations (already loading, undecided origin, blank
// destination, unknown leg) are request errors.
func (h *LegHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.LegSearchRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	_, it, err := loadItinerary(r.Context(), h.Store, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if !legExists(it, req.Origin, req.Destination) {
		writeError(w, r, http.StatusBadRequest, "leg is not part of the itinerary")
		return
	}

	mode := domain.TransportMode(req.Mode)
	if mode == "" {
		mode = it.Trip().Transport
	}
	key := travel.LegKey{Origin: req.Origin, Destination: req.Destination, Mode: mode}

	info, err := h.Orchestrator.Fetch(r.Context(), key)
	if err != nil && errors.Is(err, domain.ErrValidation) {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, legInfoResponse(key, info, h.Orchestrator.CanFetch(key)))
}

// SwitchMode resets a leg after a transport-mode change: the old mode's
// stored result is cleared and the new mode starts from Idle, so a
// previous mode's numbers are never shown, even transiently.
func (h *LegHandler) SwitchMode(w http.ResponseWriter, r *http.Request) {
	var req dto.LegModeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	if _, _, err := loadItinerary(r.Context(), h.Store, r.PathValue("id")); err != nil {
		writeDomainError(w, r, err)
		return
	}

	oldKey := travel.LegKey{Origin: req.Origin, Destination: req.Destination, Mode: domain.TransportMode(req.FromMode)}
	newKey := travel.LegKey{Origin: req.Origin, Destination: req.Destination, Mode: domain.TransportMode(req.ToMode)}
	h.Orchestrator.Reset(oldKey)
	h.Orchestrator.Reset(newKey)

	writeJSON(w, r, http.StatusOK, legInfoResponse(newKey, h.Orchestrator.Info(newKey), h.Orchestrator.CanFetch(newKey)))
}

func legExists(it *itinerary.Itinerary, origin, destination string) bool {
	for _, l := range it.Legs() {
		if l.Origin == origin && l.Destination == destination {
			return true
		}
	}
	return false
}

func legInfoResponse(key travel.LegKey, info travel.LegInfo, canSearch bool) dto.LegInfoResponse {
	return dto.LegInfoResponse{
		Origin:      key.Origin,
		Destination: key.Destination,
		Mode:        string(key.Mode),
		Status:      string(info.Status),
		Duration:    info.Duration,
		Distance:    info.Distance,
		Error:       info.Err,
		CanSearch:   canSearch,
	}
}
