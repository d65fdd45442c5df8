package dto

type SpotRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Memo      string `json:"memo"`
	VisitDate string `json:"visit_date"`
	VisitTime string `json:"visit_time"`
}

// Pointer fields distinguish "omitted" from "set to empty".
type SpotPatchRequest struct {
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	Memo      *string `json:"memo"`
	VisitDate *string `json:"visit_date"`
	VisitTime *string `json:"visit_time"`
}

type SpotResponse struct {
	SpotID    string `json:"spot_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Memo      string `json:"memo"`
	VisitDate string `json:"visit_date"`
	VisitTime string `json:"visit_time"`
}

type ReorderSpotRequest struct {
	ToIndex int `json:"to_index"`
}

type DayGroupResponse struct {
	Date  string         `json:"date"`
	Spots []SpotResponse `json:"spots"`
}
