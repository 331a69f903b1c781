package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"storyprint-backend/internal/generation"
	"storyprint-backend/internal/handlers"
	"storyprint-backend/internal/models"
	"storyprint-backend/internal/state"
	"storyprint-backend/internal/storage"
	"storyprint-backend/internal/store"
	"storyprint-backend/internal/wizard"
)

// scriptedProvider returns fixed generation outputs so handler tests stay
// deterministic without a live model.
type scriptedProvider struct {
	text    string
	caption string
	err     error
}

func (p *scriptedProvider) GenerateText(_ context.Context, _ string) (string, error) {
	return p.text, p.err
}

func (p *scriptedProvider) GenerateFromImage(_ context.Context, _ []byte, _ string, _ string) (string, error) {
	return p.caption, p.err
}

type testEnv struct {
	router *gin.Engine
	app    *state.App
}

func newEnv(t *testing.T, provider *scriptedProvider) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	app := state.New(st)
	require.NoError(t, app.Load())

	objectStorage := storage.NewDataURLStorage()
	gen := generation.NewService(provider)
	flow := wizard.NewFlow(gen)

	wizardHandler := handlers.NewWizardHandler(flow, app, objectStorage)
	projectsHandler := handlers.NewProjectsHandler(app)
	photosHandler := handlers.NewPhotosHandler(app, objectStorage)
	ordersHandler := handlers.NewOrdersHandler(app)
	generateHandler := handlers.NewGenerateHandler(app, gen, objectStorage)

	router := gin.New()
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")
	api.POST("/wizard", wizardHandler.Start)
	api.GET("/wizard/:session_id", wizardHandler.Get)
	api.POST("/wizard/:session_id/next", wizardHandler.Next)
	api.POST("/wizard/:session_id/back", wizardHandler.Back)
	api.POST("/wizard/:session_id/photo", wizardHandler.UploadPortrait)
	api.DELETE("/wizard/:session_id/photo", wizardHandler.RemovePortrait)
	api.POST("/wizard/:session_id/complete", wizardHandler.Complete)
	api.GET("/projects", projectsHandler.List)
	api.GET("/projects/:project_id", projectsHandler.Get)
	api.POST("/projects/:project_id/open", projectsHandler.Open)
	api.PATCH("/projects/:project_id/pages/:page_index", projectsHandler.UpdatePage)
	api.POST("/projects/:project_id/pages/:page_index/caption", generateHandler.Caption)
	api.POST("/photos", photosHandler.Upload)
	api.GET("/photos", photosHandler.List)
	api.POST("/orders", ordersHandler.Place)
	api.GET("/orders", ordersHandler.List)
	api.GET("/orders/:order_id", ordersHandler.Get)
	api.GET("/orders/:order_id/pipeline", ordersHandler.Pipeline)

	return &testEnv{router: router, app: app}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doRaw sends a raw JSON payload, for bodies the typed helper cannot express
// (such as an explicit null field).
func (e *testEnv) doRaw(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doMultipart(t *testing.T, method, path, field string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, data := range files {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// createProject drives a complete wizard pass and returns the new book.
func (e *testEnv) createProject(t *testing.T, recipientName string) models.PhotoBook {
	t.Helper()

	w := e.do(t, "POST", "/api/v1/wizard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	session := decode[models.WizardSessionResponse](t, w)

	steps := []models.WizardStepRequest{
		{},
		{RecipientName: recipientName},
		{SenderName: "Max"},
		{Title: "Für " + recipientName},
		{WritingStyle: "Modern & direkt"},
	}
	for _, step := range steps {
		w = e.do(t, "POST", "/api/v1/wizard/"+session.SessionID+"/next", step)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = e.do(t, "POST", "/api/v1/wizard/"+session.SessionID+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	return decode[models.PhotoBook](t, w)
}
