package api

import (
	"net/http"

	"github.com/Tiffany-sho/travel-app/internal/api/handlers"
	"github.com/Tiffany-sho/travel-app/internal/mapview"
	"github.com/Tiffany-sho/travel-app/internal/ports"
	"github.com/Tiffany-sho/travel-app/internal/travel"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(store ports.TripStore, orchestrator *travel.Orchestrator, mv *mapview.MapView) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{Store: store}
	spotHandler := &handlers.SpotHandler{Store: store}
	legHandler := &handlers.LegHandler{Store: store, Orchestrator: orchestrator}
	mapHandler := &handlers.MapHandler{Store: store, Map: mv}
	routeHandler := &handlers.RouteQueryHandler{Orchestrator: orchestrator}

	mux.HandleFunc("/health", handlers.Health)

	mux.HandleFunc("POST /trips", tripHandler.Create)
	mux.HandleFunc("GET /trips/{id}", tripHandler.Get)
	mux.HandleFunc("PUT /trips/{id}/departure", tripHandler.SetDeparture)

	mux.HandleFunc("POST /trips/{id}/spots", spotHandler.Create)
	mux.HandleFunc("PATCH /trips/{id}/spots/{spotID}", spotHandler.Update)
	mux.HandleFunc("DELETE /trips/{id}/spots/{spotID}", spotHandler.Delete)
	mux.HandleFunc("POST /trips/{id}/spots/{spotID}/reorder", spotHandler.Reorder)
	mux.HandleFunc("POST /trips/{id}/spots/{spotID}/edit", spotHandler.BeginEdit)
	mux.HandleFunc("DELETE /trips/{id}/spots/{spotID}/edit", spotHandler.EndEdit)

	mux.HandleFunc("GET /trips/{id}/legs", legHandler.List)
	mux.HandleFunc("POST /trips/{id}/legs/search", legHandler.Search)
	mux.HandleFunc("POST /trips/{id}/legs/mode", legHandler.SwitchMode)

	mux.HandleFunc("GET /trips/{id}/map", mapHandler.Get)

	mux.HandleFunc("GET /route", routeHandler.Query)

	return loggingMiddleware(mux)
}
