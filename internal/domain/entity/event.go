package entity

import "time"

// Event is a platform-wide happening, independent of any brand.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Background  string    `json:"background"`
	Banner      string    `json:"banner"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Activities  []string  `json:"activities"` // ordered activity images
	Liked       int       `json:"liked"`
	Going       int       `json:"going"`
}
