package handlers

import (
	"net/http"
	"strings"

	"github.com/Tiffany-sho/travel-app/internal/api/dto"
	"github.com/Tiffany-sho/travel-app/internal/domain"
	"github.com/Tiffany-sho/travel-app/internal/travel"
)

// RouteQueryHandler is the stateless route query surface: origin,
// destination and an optional mode in, formatted duration and distance
// out. 400 for missing parameters, 404 for any resolution failure.
type RouteQueryHandler struct {
	Orchestrator *travel.Orchestrator
}

func (h *RouteQueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	origin := strings.TrimSpace(q.Get("origin"))
	destination := strings.TrimSpace(q.Get("destination"))
	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	mode := domain.TransportMode(q.Get("mode"))
	if mode == "" {
		mode = domain.ModeDriving
	}

	duration, distance, err := h.Orchestrator.Lookup(r.Context(), origin, destination, mode)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RouteQueryResponse{Duration: duration, Distance: distance})
}
