package models

// ZoneCount represents one row of the top pickup zones ranking
type ZoneCount struct {
	LocationID int64  `json:"location_id"`
	Zone       string `json:"zone"`
	Borough    string `json:"borough"`
	Trips      int    `json:"trips"`
}

// HourFare represents the average fare for one pickup hour
type HourFare struct {
	Hour    int     `json:"hour"` // 0-23
	AvgFare float64 `json:"avg_fare"`
}

// DistanceBin represents one bin of the trip distance histogram
type DistanceBin struct {
	Low   float64 `json:"low"`  // Inclusive
	High  float64 `json:"high"` // Exclusive, inclusive for the last bin
	Count int     `json:"count"`
}

// PaymentCount represents the trip count for one payment type
type PaymentCount struct {
	Payment string `json:"payment"`
	Trips   int    `json:"trips"`
}

// DayNames lists day-of-week column labels, Monday first
var DayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayHourMatrix represents trip counts by pickup hour and day of week.
// Rows are hours 0-23, columns follow Days. The matrix is always dense:
// pairs with no trips hold zero.
type DayHourMatrix struct {
	Days   [7]string  `json:"days"`
	Counts [24][7]int `json:"counts"`
}
