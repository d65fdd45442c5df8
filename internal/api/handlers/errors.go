package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Tiffany-sho/travel-app/internal/domain"
)

// writeDomainError maps the error taxonomy onto HTTP statuses. Internal
// detail stays in the log; the client sees a class-level message.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrNoActiveTrip):
		// The caller redirects to trip creation on this signal.
		writeError(w, r, http.StatusNotFound, "no active trip")
	case errors.Is(err, domain.ErrPlaceNotFound):
		writeError(w, r, http.StatusNotFound, "place not found")
	case errors.Is(err, domain.ErrRouteNotFound):
		writeError(w, r, http.StatusNotFound, "route not found")
	case errors.Is(err, domain.ErrConfiguration):
		log.Printf("configuration error: %v", err)
		writeError(w, r, http.StatusInternalServerError, "service misconfigured")
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrCommunication):
		log.Printf("upstream failure: %v", err)
		writeError(w, r, http.StatusBadGateway, "route service unavailable")
	default:
		log.Printf("internal error: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
