package dto

type CreateTripRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Transport   string `json:"transport"`
}

type TripResponse struct {
	TripID      string `json:"trip_id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Transport   string `json:"transport"`
}

type DepartureRequest struct {
	Location          string `json:"location"`
	DateTime          string `json:"datetime"`
	DateTimeUndecided bool   `json:"datetime_undecided"`
}

type DepartureResponse struct {
	Location          string `json:"location"`
	DateTime          string `json:"datetime"`
	DateTimeUndecided bool   `json:"datetime_undecided"`
}

type TripDetailResponse struct {
	Trip      TripResponse       `json:"trip"`
	Departure *DepartureResponse `json:"departure"`
	Days      []DayGroupResponse `json:"days"`
	Legs      []LegPairResponse  `json:"legs"`
	Editing   bool               `json:"editing"`
}
