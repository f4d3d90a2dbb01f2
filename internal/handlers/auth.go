package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/B01812625/sportgames/internal/middleware"
	"github.com/B01812625/sportgames/internal/service"
)

// AuthHandler handles registration, login, logout, profile and account
// deletion requests.
type AuthHandler struct {
	authService service.AuthService
	cookies     *SessionCookie
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, cookies *SessionCookie) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=2,max=20"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
	Consent         bool   `json:"consent"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// DeleteAccountRequest confirms an account deletion with the current
// password.
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new user
// @Description Create an account; requires privacy policy consent
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration fields"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Consent:  req.Consent,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Authenticate by email and password and establish a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, req.Remember)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	h.cookies.Set(c, result.Token, result.TTL)
	c.JSON(http.StatusOK, result.User)
}

// Logout godoc
// @Summary Log out
// @Description Invalidate the current session
// @Tags auth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "logout failed")
		return
	}

	h.cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Profile godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteAccount godoc
// @Summary Delete own account
// @Description Password-confirmed deletion of the account, its applications and uploaded documents
// @Tags auth
// @Accept json
// @Produce json
// @Param request body DeleteAccountRequest true "Current password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/account [delete]
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required")
		return
	}

	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.authService.DeleteAccount(c.Request.Context(), user, req.Password, middleware.SessionToken(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	h.cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
