package domain

import "time"

// Category is a labeled, coloured grouping of exercises (e.g. "Legs",
// "Cardio"). The colour is a #RRGGBB hex string used for tagging days in the
// calendar and history views.
//
// Names are unique. The calendar view dedups day markers by colour while the
// history view dedups by category name; those two disciplines only agree
// because a name maps to exactly one category row (and therefore one colour).
type Category struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"uniqueIndex;size:255" json:"name"`
	Colour string `gorm:"size:7" json:"colour"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
