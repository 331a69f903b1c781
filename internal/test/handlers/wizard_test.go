package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyprint-backend/internal/book"
	"storyprint-backend/internal/models"
)

func TestWizard_StartReturnsDefaults(t *testing.T) {
	env := newEnv(t, &scriptedProvider{})

	w := env.do(t, "POST", "/api/v1/wizard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	session := decode[models.WizardSessionResponse](t, w)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, 1, session.Step)
	assert.Equal(t, "Partner/in", session.Draft.Recipient)
	assert.Equal(t, "Modern & direkt", session.Draft.WritingStyle)
	assert.Contains(t, session.Recipients, "Mama/Papa")
	assert.Contains(t, session.WritingStyles, "Ruhig & Poetisch")
}

func TestWizard_NextRejectsIncompleteStep(t *testing.T) {
	env := newEnv(t, &scriptedProvider{})

	w := env.do(t, "POST", "/api/v1/wizard", nil)
	session := decode[models.WizardSessionResponse](t, w)

	w = env.do(t, "POST", "/api/v1/wizard/"+session.SessionID+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Step 2 without a recipient name.
	w = env.do(t, "POST", "/api/v1/wizard/"+session.SessionID+"/next", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "step incomplete")
}

func TestWizard_TitleSuggestionsOnStepFour(t *testing.T) {
	env := newEnv(t, &scriptedProvider{text: `"Eins"; "Zwei"; "Drei"`})

	w := env.do(t, "POST", "/api/v1/wizard", nil)
	session := decode[models.WizardSessionResponse](t, w)
	id := session.SessionID

	env.do(t, "POST", "/api/v1/wizard/"+id+"/next", nil)
	env.do(t, "POST", "/api/v1/wizard/"+id+"/next", models.WizardStepRequest{RecipientName: "Anna"})
	w = env.do(t, "POST", "/api/v1/wizard/"+id+"/next", models.WizardStepRequest{SenderName: "Max"})
	require.Equal(t, http.StatusOK, w.Code)

	session = decode[models.WizardSessionResponse](t, w)
	assert.Equal(t, 4, session.Step)
	assert.Equal(t, []string{"Eins", "Zwei", "Drei"}, session.TitleSuggestions)
}

func TestWizard_BackFromFirstStepExits(t *testing.T) {
	env := newEnv(t, &scriptedProvider{})

	w := env.do(t, "POST", "/api/v1/wizard", nil)
	session := decode[models.WizardSessionResponse](t, w)

	w = env.do(t, "POST", "/api/v1/wizard/"+session.SessionID+"/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[models.WizardSessionResponse](t, w)
	assert.True(t, out.Exited)

	w = env.do(t, "GET", "/api/v1/wizard/"+session.SessionID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWizard_PortraitUploadAndRemove(t *testing.T) {
	env := newEnv(t, &scriptedProvider{})

	w := env.do(t, "POST", "/api/v1/wizard", nil)
	session := decode[models.WizardSessionResponse](t, w)
	id := session.SessionID

	w = env.doMultipart(t, "POST", "/api/v1/wizard/"+id+"/photo", "image", map[string][]byte{
		"anna.jpg": []byte("fake image bytes"),
	})
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[models.WizardSessionResponse](t, w)
	assert.NotEmpty(t, out.Draft.RecipientPhotoURL)

	w = env.do(t, "DELETE", "/api/v1/wizard/"+id+"/photo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out = decode[models.WizardSessionResponse](t, w)
	assert.Empty(t, out.Draft.RecipientPhotoURL)
}

func TestWizard_CompleteBeforeFinalStep(t *testing.T) {
	env := newEnv(t, &scriptedProvider{})

	w := env.do(t, "POST", "/api/v1/wizard", nil)
	session := decode[models.WizardSessionResponse](t, w)

	w = env.do(t, "POST", "/api/v1/wizard/"+session.SessionID+"/complete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "wizard not finished")
}

func TestWizard_CompleteCreatesProject(t *testing.T) {
	env := newEnv(t, &scriptedProvider{})

	project := env.createProject(t, "Anna")

	assert.Equal(t, "Für Anna", project.Title)
	assert.Equal(t, models.BookStatusDraft, project.Status)
	require.Len(t, project.Pages, book.PageCount)
	// No portrait was uploaded, so every page starts empty.
	assert.Empty(t, project.Pages[0].PhotoID)
	assert.Empty(t, project.Pages[0].Caption)

	// The new book is listed and active.
	w := env.do(t, "GET", "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.ProjectListResponse](t, w)
	require.Len(t, list.Projects, 1)
	assert.Equal(t, project.ID, list.Projects[0].ID)

	// The consumed session is gone.
	w = env.do(t, "POST", "/api/v1/wizard/missing/complete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWizard_CompleteWithPortraitFillsFirstPage(t *testing.T) {
	env := newEnv(t, &scriptedProvider{})

	w := env.do(t, "POST", "/api/v1/wizard", nil)
	session := decode[models.WizardSessionResponse](t, w)
	id := session.SessionID

	steps := []models.WizardStepRequest{
		{},
		{RecipientName: "Anna"},
		{SenderName: "Max"},
		{Title: "Für Anna"},
		{WritingStyle: "Modern & direkt"},
	}
	for _, step := range steps {
		w = env.do(t, "POST", "/api/v1/wizard/"+id+"/next", step)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = env.doMultipart(t, "POST", "/api/v1/wizard/"+id+"/photo", "image", map[string][]byte{
		"anna.jpg": []byte("fake image bytes"),
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "POST", "/api/v1/wizard/"+id+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	project := decode[models.PhotoBook](t, w)

	require.Len(t, project.Pages, book.PageCount)
	assert.NotEmpty(t, project.Pages[0].PhotoID)
	assert.Equal(t, "Das ist Anna", project.Pages[0].Caption)

	// The portrait joined the photo library.
	w = env.do(t, "GET", "/api/v1/photos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	photos := decode[models.PhotoListResponse](t, w)
	require.Len(t, photos.Photos, 1)
	assert.Equal(t, "Portrait Anna", photos.Photos[0].Name)
}
