package dto

type MapPointResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type MapBoundsResponse struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// MapViewResponse tells the map surface how to render the trip. Fit false
// means "leave the viewport unchanged".
type MapViewResponse struct {
	Fit       bool               `json:"fit"`
	CloseZoom bool               `json:"close_zoom"`
	CenterLat float64            `json:"center_lat"`
	CenterLon float64            `json:"center_lon"`
	Bounds    *MapBoundsResponse `json:"bounds,omitempty"`
	Points    []MapPointResponse `json:"points"`
}
