// Package service implements the business logic of the registration service.
package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto
// HTTP status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUsernameTaken   = errors.New("username is already taken")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrInvalidUsername = errors.New("username must be 2-20 characters")
	ErrConsentRequired = errors.New("privacy policy consent is required")

	ErrInvalidCategory = errors.New("unknown competition category")
	ErrInvalidDates    = errors.New("application deadline must precede the start date")

	ErrCompetitionClosed    = errors.New("competition is closed for applications")
	ErrNoOpenCompetitions   = errors.New("no competitions are currently open for application")
	ErrDuplicateApplication = errors.New("an application for this competition already exists")
	ErrFileTypeNotAllowed   = errors.New("file type is not allowed")

	ErrInvalidDecision     = errors.New("review decision must be approved or rejected")
	ErrInvalidStatusFilter = errors.New("unknown status filter")
)
