package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/B01812625/sportgames/internal/models"
	"github.com/B01812625/sportgames/internal/service"
)

// AdminHandler serves the admin-only endpoints: dashboard, competition
// management and application review.
type AdminHandler struct {
	admin        service.AdminService
	competitions service.CompetitionService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(admin service.AdminService, competitions service.CompetitionService) *AdminHandler {
	return &AdminHandler{
		admin:        admin,
		competitions: competitions,
	}
}

// CompetitionRequest represents the create/update competition payload.
type CompetitionRequest struct {
	Name                string    `json:"name" binding:"required,max=100"`
	Description         string    `json:"description" binding:"required"`
	Category            string    `json:"category" binding:"required"`
	StartDate           time.Time `json:"start_date" binding:"required"`
	ApplicationDeadline time.Time `json:"application_deadline" binding:"required"`
}

// ReviewRequest represents the application review payload.
type ReviewRequest struct {
	Decision string `json:"decision" binding:"required"`
	Notes    string `json:"notes" binding:"max=500"`
}

// Dashboard godoc
// @Summary Admin dashboard
// @Description Aggregate counts, upcoming competitions and latest pending applications
// @Tags admin
// @Produce json
// @Success 200 {object} service.DashboardStats
// @Failure 403 {object} map[string]string
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.admin.Dashboard(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListCompetitions godoc
// @Summary List competitions for management
// @Tags admin
// @Produce json
// @Success 200 {array} models.Competition
// @Router /admin/competitions [get]
func (h *AdminHandler) ListCompetitions(c *gin.Context) {
	competitions, err := h.competitions.ListForAdmin(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, competitions)
}

// CreateCompetition godoc
// @Summary Create a competition
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CompetitionRequest true "Competition fields"
// @Success 201 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Router /admin/competitions [post]
func (h *AdminHandler) CreateCompetition(c *gin.Context) {
	var req CompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	competition, err := h.competitions.Create(c.Request.Context(), competitionInput(req))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, competition)
}

// UpdateCompetition godoc
// @Summary Update a competition
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Competition ID"
// @Param request body CompetitionRequest true "Competition fields"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/competitions/{id} [put]
func (h *AdminHandler) UpdateCompetition(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid competition id")
		return
	}

	var req CompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	competition, err := h.competitions.Update(c.Request.Context(), id, competitionInput(req))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, competition)
}

// DeleteCompetition godoc
// @Summary Delete a competition
// @Description Removes the competition, its applications and their uploaded documents
// @Tags admin
// @Produce json
// @Param id path int true "Competition ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/competitions/{id} [delete]
func (h *AdminHandler) DeleteCompetition(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid competition id")
		return
	}

	if err := h.competitions.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "competition deleted"})
}

// ListApplications godoc
// @Summary List applications
// @Description All applications, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "all | pending | approved | rejected"
// @Success 200 {array} models.Application
// @Failure 400 {object} map[string]string
// @Router /admin/applications [get]
func (h *AdminHandler) ListApplications(c *gin.Context) {
	applications, err := h.admin.ListApplications(c.Request.Context(), c.DefaultQuery("status", "all"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ReviewApplication godoc
// @Summary Review an application
// @Description Approve or reject with optional notes
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body ReviewRequest true "Review decision"
// @Success 200 {object} models.Application
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/applications/{id}/review [post]
func (h *AdminHandler) ReviewApplication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid application id")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	application, err := h.admin.Review(c.Request.Context(), id, models.ApplicationStatus(req.Decision), req.Notes)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func competitionInput(req CompetitionRequest) service.CompetitionInput {
	return service.CompetitionInput{
		Name:                req.Name,
		Description:         req.Description,
		Category:            models.Category(req.Category),
		StartDate:           req.StartDate,
		ApplicationDeadline: req.ApplicationDeadline,
	}
}
