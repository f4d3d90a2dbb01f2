package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/B01812625/sportgames/internal/middleware"
	"github.com/B01812625/sportgames/internal/service"
)

// ApplicationHandler serves the authenticated application endpoints.
type ApplicationHandler struct {
	applications service.ApplicationService
	documents    service.DocumentStore
	maxUpload    int64
}

// NewApplicationHandler creates a new ApplicationHandler instance.
func NewApplicationHandler(
	applications service.ApplicationService,
	documents service.DocumentStore,
	maxUpload int64,
) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		documents:    documents,
		maxUpload:    maxUpload,
	}
}

// SubmitForm represents the multipart submission fields.
type SubmitForm struct {
	CompetitionID int64  `form:"competition_id" binding:"required"`
	TeamName      string `form:"team_name" binding:"max=100"`
	Notes         string `form:"notes" binding:"max=500"`
}

// Submit godoc
// @Summary Submit an application
// @Description Apply to an open competition, optionally attaching a document
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Param competition_id formData int true "Competition ID"
// @Param team_name formData string false "Team name; blank for an individual entry"
// @Param notes formData string false "Additional notes"
// @Param document formData file false "Supporting document"
// @Success 201 {object} models.Application
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	var form SubmitForm
	if err := c.ShouldBind(&form); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	input := service.SubmitInput{
		CompetitionID: form.CompetitionID,
		TeamName:      form.TeamName,
		Notes:         form.Notes,
	}

	if file, err := c.FormFile("document"); err == nil {
		if file.Size > h.maxUpload {
			RespondError(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("document exceeds the %d MB limit", h.maxUpload>>20))
			return
		}
		src, err := file.Open()
		if err != nil {
			LogAndRespondError(c, http.StatusBadRequest, err, "could not read uploaded document")
			return
		}
		defer src.Close()
		input.Document = src
		input.DocumentName = file.Filename
	}

	application, err := h.applications.Submit(c.Request.Context(), user, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// ListMine godoc
// @Summary List own applications
// @Description The caller's applications, newest submission first
// @Tags applications
// @Produce json
// @Success 200 {array} models.Application
// @Failure 401 {object} map[string]string
// @Router /applications [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required")
		return
	}

	applications, err := h.applications.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// Get godoc
// @Summary Own application detail
// @Description One of the caller's applications; other users' applications read as missing
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} models.Application
// @Failure 404 {object} map[string]string
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid application id")
		return
	}

	application, err := h.applications.GetOwned(c.Request.Context(), id, user.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// DownloadDocument godoc
// @Summary Download an application document
// @Description Streams the stored document; owners and admins only
// @Tags applications
// @Produce octet-stream
// @Param id path int true "Application ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /applications/{id}/document [get]
func (h *ApplicationHandler) DownloadDocument(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid application id")
		return
	}

	application, err := h.applications.GetOwned(c.Request.Context(), id, user.ID)
	if err != nil && user.IsAdmin {
		application, err = h.applications.Get(c.Request.Context(), id)
	}
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	if application.DocumentFilename == nil {
		RespondError(c, http.StatusNotFound, "application has no document")
		return
	}

	path := h.documents.Path(application.UserID, *application.DocumentFilename)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", *application.DocumentFilename))
	c.File(path)
}
