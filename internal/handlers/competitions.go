package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/B01812625/sportgames/internal/service"
)

// CompetitionHandler serves the public competition endpoints.
type CompetitionHandler struct {
	competitions service.CompetitionService
}

// NewCompetitionHandler creates a new CompetitionHandler instance.
func NewCompetitionHandler(competitions service.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{competitions: competitions}
}

// List godoc
// @Summary List competitions
// @Description All competitions, soonest start date first
// @Tags competitions
// @Produce json
// @Success 200 {array} models.Competition
// @Router /competitions [get]
func (h *CompetitionHandler) List(c *gin.Context) {
	competitions, err := h.competitions.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, competitions)
}

// ListOpen godoc
// @Summary List open competitions
// @Description Competitions whose application deadline has not passed
// @Tags competitions
// @Produce json
// @Success 200 {array} models.Competition
// @Router /competitions/open [get]
func (h *CompetitionHandler) ListOpen(c *gin.Context) {
	competitions, err := h.competitions.ListOpen(c.Request.Context(), time.Now().UTC())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, competitions)
}

// Get godoc
// @Summary Competition detail
// @Tags competitions
// @Produce json
// @Param id path int true "Competition ID"
// @Success 200 {object} service.CompetitionDetail
// @Failure 404 {object} map[string]string
// @Router /competitions/{id} [get]
func (h *CompetitionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid competition id")
		return
	}

	detail, err := h.competitions.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
