package domain

import "time"

// Set represents a single logged measurement event: one performance of an
// exercise on a given date. Which of the four measurement fields are populated
// depends on the exercise type (e.g. "Weight And Reps" sets carry Weight and
// Reps, a "Time" set carries only Time).
type Set struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Date       string   `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	ExerciseID uint     `gorm:"index" json:"exerciseId"`
	Weight     *float64 `json:"weight,omitempty"` // kilograms
	Reps       *int     `json:"reps,omitempty"`
	Distance   *float64 `json:"distance,omitempty"` // kilometres
	Time       *int     `json:"time,omitempty"`     // seconds
	Notes      string   `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DateLayout is the calendar date format used throughout: sets are keyed by
// day, never by time of day. Display order within a day comes from the row
// IDs (sets carry no intra-day timestamp the UI relies on).
const DateLayout = "2006-01-02"
