// Package models contains data models for the registration service.
package models

import "time"

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Application is one user's submission for one competition. The
// composite unique index on (user_id, competition_id) makes the
// one-application-per-competition rule hold under concurrent submits.
type Application struct {
	ID               int64             `json:"id" gorm:"primaryKey"`
	UserID           int64             `json:"user_id" gorm:"not null;uniqueIndex:idx_applications_user_competition"`
	CompetitionID    int64             `json:"competition_id" gorm:"not null;uniqueIndex:idx_applications_user_competition"`
	TeamName         *string           `json:"team_name" gorm:"size:100"`
	DocumentFilename *string           `json:"document_filename" gorm:"size:255"`
	Notes            string            `json:"notes" gorm:"size:500"`
	Status           ApplicationStatus `json:"status" gorm:"size:20;not null;default:pending"`
	SubmissionDate   time.Time         `json:"submission_date" gorm:"not null"`
	ApprovedAt       *time.Time        `json:"approved_at"`

	User        *User        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Competition *Competition `json:"competition,omitempty" gorm:"foreignKey:CompetitionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Application model.
func (Application) TableName() string {
	return "applications"
}

// IsIndividual reports whether the application was submitted without a
// team name.
func (a *Application) IsIndividual() bool {
	return a.TeamName == nil || *a.TeamName == ""
}
