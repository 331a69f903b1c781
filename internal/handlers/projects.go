package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storyprint-backend/internal/book"
	"storyprint-backend/internal/models"
	"storyprint-backend/internal/state"
)

type ProjectsHandler struct {
	app *state.App
}

func NewProjectsHandler(app *state.App) *ProjectsHandler {
	return &ProjectsHandler{app: app}
}

// List godoc
// @Summary     List photo-book projects
// @Description Returns all projects, newest first.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ProjectListResponse
// @Router      /projects [get]
func (h *ProjectsHandler) List(c *gin.Context) {
	projects := h.app.Projects()

	summaries := make([]models.ProjectSummary, len(projects))
	for i, p := range projects {
		summaries[i] = models.ProjectSummary{
			ID:        p.ID,
			Title:     p.Title,
			Status:    p.Status,
			PageCount: len(p.Pages),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
	}

	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: summaries})
}

// Get godoc
// @Summary     Get a project
// @Description Returns the full photo book for a project, pages included.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID"
// @Success     200 {object} models.PhotoBook
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id} [get]
func (h *ProjectsHandler) Get(c *gin.Context) {
	project, err := h.app.Project(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// Open godoc
// @Summary     Open a project in the editor
// @Description Marks a project as the one active in the editor and returns it.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID"
// @Success     200 {object} models.PhotoBook
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/open [post]
func (h *ProjectsHandler) Open(c *gin.Context) {
	projectID := c.Param("project_id")
	if err := h.app.SetActive(projectID); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
		return
	}
	project, err := h.app.Project(projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdatePage godoc
// @Summary     Update a single page
// @Description Applies a partial update to one page. An absent photo_id leaves the photo
// @Description unchanged, an explicit null clears it, a string assigns it. An absent caption
// @Description leaves the caption unchanged. At least one field must be present.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID"
// @Param       page_index path int true "Zero-based page index"
// @Param       request body models.UpdatePageRequest true "Partial page update"
// @Success     200 {object} models.PhotoBook
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/pages/{page_index} [patch]
func (h *ProjectsHandler) UpdatePage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("page_index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid page index"})
		return
	}

	var req models.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if !req.PhotoID.Set && req.Caption == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "empty update",
			Message: "provide photo_id, caption, or both",
		})
		return
	}

	update := book.PageUpdate{Caption: req.Caption}
	if req.PhotoID.Set {
		if req.PhotoID.Value == nil {
			update.Photo = book.ClearPhoto()
		} else {
			update.Photo = book.SetPhoto(*req.PhotoID.Value)
		}
	}

	project, err := h.app.UpdatePage(c.Param("project_id"), index, update)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
		case errors.Is(err, book.ErrPageOutOfRange):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "page index out of range"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update page", Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, project)
}
