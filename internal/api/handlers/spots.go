package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Tiffany-sho/travel-app/internal/api/dto"
	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/itinerary"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

// SpotHandler exposes the spot collection mutations.
type SpotHandler struct {
	Store ports.TripStore
}

func (h *SpotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SpotRequest

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

	spot, err := it.AddSpot(itinerary.SpotDraft{
		Name:      req.Name,
		Category:  domain.Category(req.Category),
		Memo:      req.Memo,
		VisitDate: req.VisitDate,
		VisitTime: req.VisitTime,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := saveItinerary(r.Context(), h.Store, rec, it); err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, spotResponse(spot))
}

func (h *SpotHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.SpotPatchRequest

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

	patch := itinerary.SpotPatch{
		Name:      req.Name,
		Memo:      req.Memo,
		VisitDate: req.VisitDate,
		VisitTime: req.VisitTime,
	}
	if req.Category != nil {
		c := domain.Category(*req.Category)
		patch.Category = &c
	}

	spot, err := it.UpdateSpot(r.PathValue("spotID"), patch)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := saveItinerary(r.Context(), h.Store, rec, it); err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, spotResponse(spot))
}

// Delete removes a spot. Deleting an absent id still answers 204:
// deletion is idempotent.
func (h *SpotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rec, it, err := loadItinerary(r.Context(), h.Store, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	it.DeleteSpot(r.PathValue("spotID"))

	if err := saveItinerary(r.Context(), h.Store, rec, it); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SpotHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderSpotRequest

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

	if err := it.ReorderSpot(r.PathValue("spotID"), req.ToIndex); err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := saveItinerary(r.Context(), h.Store, rec, it); err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, tripDetailResponse(rec.ID, it))
}

// BeginEdit takes the inline-edit lock for one spot, disabling reorder
// until EndEdit.
func (h *SpotHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	rec, it, err := loadItinerary(r.Context(), h.Store, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := it.BeginEdit(r.PathValue("spotID")); err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := saveItinerary(r.Context(), h.Store, rec, it); err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]bool{"editing": true})
}

func (h *SpotHandler) EndEdit(w http.ResponseWriter, r *http.Request) {
	rec, it, err := loadItinerary(r.Context(), h.Store, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	it.EndEdit()

	if err := saveItinerary(r.Context(), h.Store, rec, it); err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]bool{"editing": false})
}
