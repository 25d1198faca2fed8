package domain

import "time"

// Exercise represents a single exercise definition in the catalog.
type Exercise struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"uniqueIndex;size:255" json:"name"`
	Notes      string `json:"notes,omitempty"`
	Type       string `json:"type"` // one of the ten shape labels, e.g. "Weight And Reps"
	CategoryID uint   `gorm:"index" json:"categoryId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
