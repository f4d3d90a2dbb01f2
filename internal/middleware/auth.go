// Package middleware provides HTTP middleware for the registration service.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/B01812625/sportgames/internal/models"
	"github.com/B01812625/sportgames/internal/service"
)

const (
	// SessionCookieName is the cookie carrying the opaque session token.
	SessionCookieName = "session"

	userContextKey  = "currentUser"
	tokenContextKey = "sessionToken"
)

// RequireLogin resolves the session cookie to a user and stores it on
// the request context. Requests without a live session get 401.
func RequireLogin(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(userContextKey, user)
		c.Set(tokenContextKey, token)
		c.Next()
	}
}

// RequireAdmin rejects authenticated non-admin users with 403. It must
// run after RequireLogin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "administrator privileges required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by RequireLogin.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// SessionToken returns the raw session token resolved by RequireLogin.
func SessionToken(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}
