package models

// TripFilter represents the resolved filter applied to the clean dataset.
// Date and hour bounds are inclusive. An empty payment set selects nothing;
// an inverted range selects nothing rather than failing.
type TripFilter struct {
	StartDate string   // YYYY-MM-DD
	EndDate   string   // YYYY-MM-DD
	StartHour int      // 0-23
	EndHour   int      // 0-23
	Payments  []string // Decoded payment names
}

// PageQuery represents pagination parameters for the trip listing
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// FilterDomain represents the selectable filter ranges derived from the
// clean dataset, used by the display layer to build its controls.
type FilterDomain struct {
	MinDate  string   `json:"min_date"` // YYYY-MM-DD
	MaxDate  string   `json:"max_date"` // YYYY-MM-DD
	MinHour  int      `json:"min_hour"` // Always 0
	MaxHour  int      `json:"max_hour"` // Always 23
	Payments []string `json:"payments"` // Names present in the data, sorted
}
