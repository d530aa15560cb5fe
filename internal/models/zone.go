package models

// Zone represents one row of the taxi zone lookup table
type Zone struct {
	LocationID int64  `json:"location_id"`
	Borough    string `json:"borough"`
	Zone       string `json:"zone"`
}
