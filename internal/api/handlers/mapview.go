package handlers

import (
	"net/http"

	"github.com/Tiffany-sho/travel-app/internal/api/dto"
	"github.com/Tiffany-sho/travel-app/internal/mapview"
	"github.com/Tiffany-sho/travel-app/internal/ports"
)

// MapHandler renders the map view for a trip: destination centering plus
// a marker per resolvable itinerary place, viewport fitted to all of
// them.
type MapHandler struct {
	Store ports.TripStore
	Map   *mapview.MapView
}

func (h *MapHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, it, err := loadItinerary(r.Context(), h.Store, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	view := h.Map.Build(r.Context(), it.Trip().Destination, it.Departure(), it.Spots())

	res := dto.MapViewResponse{
		Fit:       view.Fit,
		CloseZoom: view.CloseZoom,
		CenterLat: view.Center.Lat,
		CenterLon: view.Center.Lon,
		Points:    make([]dto.MapPointResponse, 0, len(view.Points)),
	}
	if view.Fit {
		res.Bounds = &dto.MapBoundsResponse{
			MinLat: view.Bounds.MinLat,
			MinLon: view.Bounds.MinLon,
			MaxLat: view.Bounds.MaxLat,
			MaxLon: view.Bounds.MaxLon,
		}
	}
	for _, p := range view.Points {
		res.Points = append(res.Points, dto.MapPointResponse{Name: p.Name, Lat: p.Coords.Lat, Lon: p.Coords.Lon})
	}

	writeJSON(w, r, http.StatusOK, res)
}
