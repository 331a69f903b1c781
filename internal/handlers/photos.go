package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"storyprint-backend/internal/models"
	"storyprint-backend/internal/state"
	"storyprint-backend/internal/storage"
)

type PhotosHandler struct {
	app     *state.App
	storage storage.ObjectStorage
}

func NewPhotosHandler(app *state.App, objectStorage storage.ObjectStorage) *PhotosHandler {
	return &PhotosHandler{
		app:     app,
		storage: objectStorage,
	}
}

// Upload godoc
// @Summary     Upload photos to the library
// @Description Ingests one or more images. Each file resolves independently; a failed file is
// @Description reported without aborting the others, and photos join the library in the order
// @Description their ingestion completes.
// @Tags        photos
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       images formData file true "Image files (multiple allowed)"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /photos [post]
func (h *PhotosHandler) Upload(c *gin.Context) {
	// 32MB in-memory cap before spilling to disk
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	form := c.Request.MultipartForm
	if form == nil || len(form.File["images"]) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no files provided",
			Message: "provide one or more files in the images field",
		})
		return
	}

	var photos []models.Photo
	var uploadErrors []string

	for _, fileHeader := range form.File["images"] {
		file, err := fileHeader.Open()
		if err != nil {
			uploadErrors = append(uploadErrors, fmt.Sprintf("%s: %v", fileHeader.Filename, err))
			continue
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			uploadErrors = append(uploadErrors, fmt.Sprintf("%s: %v", fileHeader.Filename, err))
			continue
		}

		url, err := h.storage.Upload(c.Request.Context(), fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			uploadErrors = append(uploadErrors, fmt.Sprintf("%s: %v", fileHeader.Filename, err))
			continue
		}

		photos = append(photos, h.app.AddPhoto(url, fileHeader.Filename))
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Photos: photos,
		Errors: uploadErrors,
	})
}

// List godoc
// @Summary     List the photo library
// @Description Returns all uploaded photos, newest first.
// @Tags        photos
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.PhotoListResponse
// @Router      /photos [get]
func (h *PhotosHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, models.PhotoListResponse{Photos: h.app.Photos()})
}
