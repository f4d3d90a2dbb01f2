package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/B01812625/sportgames/internal/middleware"
)

// SessionCookie manages the session cookie.
type SessionCookie struct {
	secure bool
}

// NewSessionCookie creates a cookie helper; secure should be true
// everywhere except local development.
func NewSessionCookie(secure bool) *SessionCookie {
	return &SessionCookie{secure: secure}
}

// Set writes the session cookie with the given lifetime.
func (h *SessionCookie) Set(c *gin.Context, token string, ttl time.Duration) {
	h.write(c, token, int(ttl.Seconds()))
}

// Clear removes the session cookie.
func (h *SessionCookie) Clear(c *gin.Context) {
	h.write(c, "", -1)
}

func (h *SessionCookie) write(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		value,
		maxAge,
		"/",
		"",
		h.secure,
		true, // httpOnly - the token is never script-readable
	)
}
