package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storyprint-backend/internal/book"
	"storyprint-backend/internal/generation"
	"storyprint-backend/internal/models"
	"storyprint-backend/internal/state"
	"storyprint-backend/internal/storage"
)

type GenerateHandler struct {
	app     *state.App
	gen     *generation.Service
	storage storage.ObjectStorage
}

func NewGenerateHandler(app *state.App, gen *generation.Service, objectStorage storage.ObjectStorage) *GenerateHandler {
	return &GenerateHandler{
		app:     app,
		gen:     gen,
		storage: objectStorage,
	}
}

// Caption godoc
// @Summary     Generate a page caption
// @Description Generates an AI caption for the photo on the given page and writes it to the
// @Description page. Generation never fails outright: provider errors produce a fixed fallback
// @Description caption. The page must already carry a photo.
// @Tags        generate
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID"
// @Param       page_index path int true "Zero-based page index"
// @Success     200 {object} models.CaptionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/pages/{page_index}/caption [post]
func (h *GenerateHandler) Caption(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("page_index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid page index"})
		return
	}

	project, err := h.app.Project(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
		return
	}

	if index < 0 || index >= len(project.Pages) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "page index out of range"})
		return
	}

	page := project.Pages[index]
	if page.PhotoID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "page has no photo",
			Message: "assign a photo before generating a caption",
		})
		return
	}

	photo, ok := h.app.Photo(page.PhotoID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "photo not found"})
		return
	}

	// A failed fetch still goes through the generation service so the
	// fallback contract applies uniformly.
	image, mimeType, err := h.storage.Fetch(c.Request.Context(), photo.URL)
	if err != nil {
		log.Printf("failed to fetch photo %s: %v", photo.ID, err)
	}

	caption := h.gen.Caption(c.Request.Context(), image, mimeType, project.WritingStyle)

	updated, err := h.app.UpdatePage(project.ID, index, book.PageUpdate{Caption: &caption})
	if err != nil {
		// The project can only vanish between the read and the write.
		if errors.Is(err, state.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update page", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.CaptionResponse{
		Caption: caption,
		Page:    updated.Pages[index],
		Book:    updated,
	})
}
