package dto

// LegPairResponse is one adjacent pair of the flattened itinerary.
type LegPairResponse struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// LegInfoResponse is the cached travel-info state for one leg and mode.
type LegInfoResponse struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
	Status      string `json:"status"`
	Duration    string `json:"duration,omitempty"`
	Distance    string `json:"distance,omitempty"`
	Error       string `json:"error,omitempty"`
	CanSearch   bool   `json:"can_search"`
}

type ListLegsResponse struct {
	Legs []LegInfoResponse `json:"legs"`
}

type LegSearchRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
}

type LegModeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	FromMode    string `json:"from_mode"`
	ToMode      string `json:"to_mode"`
}

// RouteQueryResponse is the success shape of the stateless route query.
type RouteQueryResponse struct {
	Duration string `json:"duration"`
	Distance string `json:"distance"`
}
