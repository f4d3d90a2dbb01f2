// Package handlers contains HTTP request handlers for the registration service.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/B01812625/sportgames/internal/service"
)

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// LogAndRespondError logs the underlying error server-side and answers
// with a client-safe message.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, status, message)
}

// RespondServiceError maps a service sentinel error onto its HTTP
// status. Unrecognized errors are logged and hidden behind a generic
// 500.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		RespondError(c, http.StatusNotFound, "does not exist")
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrSessionNotFound):
		RespondError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrDuplicateApplication):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrConsentRequired),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidDates),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrNameTooLong),
		errors.Is(err, service.ErrDescriptionRequired),
		errors.Is(err, service.ErrDatesRequired),
		errors.Is(err, service.ErrCompetitionClosed),
		errors.Is(err, service.ErrNoOpenCompetitions),
		errors.Is(err, service.ErrFileTypeNotAllowed),
		errors.Is(err, service.ErrInvalidDecision),
		errors.Is(err, service.ErrInvalidStatusFilter):
		RespondError(c, http.StatusBadRequest, err.Error())
	default:
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal error")
	}
}
