package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"storyprint-backend/internal/models"
	"storyprint-backend/internal/state"
	"storyprint-backend/internal/storage"
	"storyprint-backend/internal/wizard"
)

type WizardHandler struct {
	flow    *wizard.Flow
	app     *state.App
	storage storage.ObjectStorage
}

func NewWizardHandler(flow *wizard.Flow, app *state.App, objectStorage storage.ObjectStorage) *WizardHandler {
	return &WizardHandler{
		flow:    flow,
		app:     app,
		storage: objectStorage,
	}
}

// Start godoc
// @Summary     Start a wizard session
// @Description Opens a new six-step book-creation session with default recipient and writing style.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.WizardSessionResponse
// @Router      /wizard [post]
func (h *WizardHandler) Start(c *gin.Context) {
	session := h.flow.Start()
	c.JSON(http.StatusOK, sessionResponse(session))
}

// Get godoc
// @Summary     Inspect a wizard session
// @Description Returns the current step and accumulated draft of a session.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       session_id path string true "Wizard session ID"
// @Success     200 {object} models.WizardSessionResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/{session_id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	session, err := h.flow.Get(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// Next godoc
// @Summary     Advance the wizard
// @Description Applies the current step's inputs and moves forward one step. The step 3 to 4
// @Description transition generates title suggestions and only responds once they are resolved.
// @Tags        wizard
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       session_id path string true "Wizard session ID"
// @Param       request body models.WizardStepRequest false "Step inputs"
// @Success     200 {object} models.WizardSessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/{session_id}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	var req models.WizardStepRequest
	// Body is optional; steps whose inputs were set earlier advance bare.
	_ = c.ShouldBindJSON(&req)

	session, err := h.flow.Next(c.Request.Context(), c.Param("session_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
		case errors.Is(err, wizard.ErrStepIncomplete):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "step incomplete",
				Message: "the current step is missing its required input",
			})
		case errors.Is(err, wizard.ErrAtFinalStep):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "already at final step",
				Message: "complete the wizard instead of advancing",
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to advance", Message: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// Back godoc
// @Summary     Step the wizard back
// @Description Moves one step back without discarding inputs. Going back from the first
// @Description step marks the session as exited.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       session_id path string true "Wizard session ID"
// @Success     200 {object} models.WizardSessionResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/{session_id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	session, err := h.flow.Back(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// UploadPortrait godoc
// @Summary     Upload the recipient portrait
// @Description Ingests the portrait shown on the book's first page. Uploading again replaces it.
// @Tags        wizard
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       session_id path string true "Wizard session ID"
// @Param       image formData file true "Portrait image"
// @Success     200 {object} models.WizardSessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/{session_id}/photo [post]
func (h *WizardHandler) UploadPortrait(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing image file", Message: err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open image", Message: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read image", Message: err.Error()})
		return
	}

	url, err := h.storage.Upload(c.Request.Context(), fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to store image", Message: err.Error()})
		return
	}

	session, err := h.flow.SetPortrait(c.Param("session_id"), url)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// RemovePortrait godoc
// @Summary     Remove the recipient portrait
// @Description Clears the portrait from the draft. The session stays on its current step.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       session_id path string true "Wizard session ID"
// @Success     200 {object} models.WizardSessionResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/{session_id}/photo [delete]
func (h *WizardHandler) RemovePortrait(c *gin.Context) {
	session, err := h.flow.RemovePortrait(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// Complete godoc
// @Summary     Complete the wizard
// @Description Turns the accumulated draft into a new photo book and makes it the active project.
// @Description Finishing without a portrait photo is a valid path.
// @Tags        wizard
// @Produce     json
// @Security    Bearer
// @Param       session_id path string true "Wizard session ID"
// @Success     200 {object} models.PhotoBook
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /wizard/{session_id}/complete [post]
func (h *WizardHandler) Complete(c *gin.Context) {
	draft, err := h.flow.Finish(c.Param("session_id"))
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
		case errors.Is(err, wizard.ErrNotAtFinalStep):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "wizard not finished",
				Message: "the flow must reach the final step before completing",
			})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to complete", Message: err.Error()})
		}
		return
	}

	project := h.app.CreateProject(draft)
	c.JSON(http.StatusOK, project)
}

func sessionResponse(s wizard.Session) models.WizardSessionResponse {
	return models.WizardSessionResponse{
		SessionID:        s.ID,
		Step:             s.Step,
		Draft:            s.Draft,
		TitleSuggestions: s.TitleSuggestions,
		Recipients:       wizard.Recipients,
		WritingStyles:    wizard.WritingStyles,
		Exited:           s.Exited,
	}
}
