// Package models contains data models for the registration service.
package models

import "time"

// Category classifies how participants enter a competition.
type Category string

const (
	CategoryIndividual     Category = "Individual"
	CategoryTeam           Category = "Team"
	CategoryIndividualTeam Category = "Individual/Team"
	CategoryMixed          Category = "Mixed"
)

// Categories lists every valid competition category.
var Categories = []Category{
	CategoryIndividual,
	CategoryTeam,
	CategoryIndividualTeam,
	CategoryMixed,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Competition represents an event users can apply to.
type Competition struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name" gorm:"size:100;not null"`
	Description         string    `json:"description" gorm:"type:text;not null"`
	Category            Category  `json:"category" gorm:"size:50;not null"`
	StartDate           time.Time `json:"start_date" gorm:"not null"`
	ApplicationDeadline time.Time `json:"application_deadline" gorm:"not null"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TableName returns the database table name for the Competition model.
func (Competition) TableName() string {
	return "competitions"
}

// IsOpen reports whether the competition still accepts applications at
// the given instant. At the exact deadline the competition is closed.
func (c *Competition) IsOpen(now time.Time) bool {
	return now.Before(c.ApplicationDeadline)
}
