// Package wizard implements the guided book-creation flow: six linear steps
// collecting recipient, names, title, writing style and an optional portrait
// photo. Sessions live server-side; the flow produces the draft that
// book.CreateProject consumes.
package wizard

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"storyprint-backend/internal/models"
)

const (
	FirstStep = 1
	LastStep  = 6

	StepRecipient     = 1
	StepRecipientName = 2
	StepSenderName    = 3
	StepTitle         = 4
	StepWritingStyle  = 5
	StepPortrait      = 6
)

// Recipients are the selectable recipient kinds, in display order.
var Recipients = []string{
	"Partner/in",
	"Freund/in",
	"Mama/Papa",
	"Schwester/Bruder",
	"Tochter/Sohn",
}

// WritingStyles are the selectable caption styles, in display order.
var WritingStyles = []string{
	"Romantisch & Gefühlvoll",
	"Verspielt & Leicht",
	"Ruhig & Poetisch",
	"Modern & direkt",
}

var (
	ErrSessionNotFound = errors.New("wizard session not found")
	// ErrStepIncomplete means the gating input for the current step is
	// missing; the forward transition is simply unavailable.
	ErrStepIncomplete = errors.New("current step is incomplete")
	ErrAtFinalStep    = errors.New("already at the final step")
	ErrNotAtFinalStep = errors.New("flow has not reached the final step")
)

// TitleGenerator produces the candidate book titles shown at step 4.
// Implementations never fail; fallback titles are still titles.
type TitleGenerator interface {
	TitleSuggestions(ctx context.Context, recipient, recipientName, senderName string) []string
}

// Session is one user's progress through the wizard.
type Session struct {
	ID               string       `json:"id"`
	Step             int          `json:"step"`
	Draft            models.Draft `json:"draft"`
	TitleSuggestions []string     `json:"title_suggestions,omitempty"`

	// Exited is set when the user backs out of step 1; the session is gone
	// and the caller should return to the landing surface.
	Exited bool `json:"exited,omitempty"`
}

// Flow manages wizard sessions.
type Flow struct {
	mu       sync.Mutex
	sessions map[string]*Session
	titles   TitleGenerator
}

func NewFlow(titles TitleGenerator) *Flow {
	return &Flow{
		sessions: make(map[string]*Session),
		titles:   titles,
	}
}

// Start opens a new session at step 1 with the original defaults.
func (f *Flow) Start() Session {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := &Session{
		ID:   uuid.NewString(),
		Step: FirstStep,
		Draft: models.Draft{
			Recipient:    Recipients[0],
			WritingStyle: "Modern & direkt",
		},
	}
	f.sessions[s.ID] = s
	return *s
}

func (f *Flow) Get(sessionID string) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return *s, nil
}

// Next applies the step's inputs and advances by one. A session already at
// the final step rejects the call without touching the draft. Steps gate on
// their required input: step 2 needs a recipient name, step 3 a sender name,
// step 4 a chosen or custom title; a gated session still keeps the submitted
// fields. The step 3 transition fetches title suggestions and only advances
// once the call has resolved, success or fallback; a session navigated
// elsewhere in the meantime still receives the late result (last write wins,
// no stale guard).
func (f *Flow) Next(ctx context.Context, sessionID string, input models.WizardStepRequest) (Session, error) {
	f.mu.Lock()
	s, ok := f.sessions[sessionID]
	if !ok {
		f.mu.Unlock()
		return Session{}, ErrSessionNotFound
	}

	if s.Step >= LastStep {
		f.mu.Unlock()
		return Session{}, ErrAtFinalStep
	}

	// Inputs behave like form fields: they are recorded before the gate so
	// the gate can read them, and a gated session keeps what was typed.
	applyInput(&s.Draft, input)

	if err := gate(s); err != nil {
		f.mu.Unlock()
		return Session{}, err
	}

	if s.Step != StepSenderName {
		s.Step++
		out := *s
		f.mu.Unlock()
		return out, nil
	}

	// Suspension point: generate title candidates without holding the lock.
	draft := s.Draft
	f.mu.Unlock()

	titles := f.titles.TitleSuggestions(ctx, draft.Recipient, draft.RecipientName, draft.SenderName)

	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok = f.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	s.TitleSuggestions = titles
	s.Step++
	return *s, nil
}

// Back moves one step backwards. Backing out of step 1 ends the flow: the
// session is removed and the returned session is marked exited.
func (f *Flow) Back(sessionID string) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	if s.Step <= FirstStep {
		delete(f.sessions, sessionID)
		out := *s
		out.Exited = true
		return out, nil
	}

	s.Step--
	return *s, nil
}

// SetPortrait attaches an ingested portrait photo reference to the draft.
func (f *Flow) SetPortrait(sessionID, url string) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	s.Draft.RecipientPhotoURL = url
	return *s, nil
}

// RemovePortrait clears the portrait; finishing without one stays valid.
func (f *Flow) RemovePortrait(sessionID string) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	s.Draft.RecipientPhotoURL = ""
	return *s, nil
}

// Finish closes a session that has reached the final step and hands back the
// accumulated draft for project creation.
func (f *Flow) Finish(sessionID string) (models.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[sessionID]
	if !ok {
		return models.Draft{}, ErrSessionNotFound
	}
	if s.Step != LastStep {
		return models.Draft{}, ErrNotAtFinalStep
	}

	delete(f.sessions, sessionID)
	return s.Draft, nil
}

func applyInput(d *models.Draft, input models.WizardStepRequest) {
	if input.Recipient != "" {
		d.Recipient = input.Recipient
	}
	if input.RecipientName != "" {
		d.RecipientName = strings.TrimSpace(input.RecipientName)
	}
	if input.SenderName != "" {
		d.SenderName = strings.TrimSpace(input.SenderName)
	}
	if input.Title != "" {
		d.Title = input.Title
	}
	if input.WritingStyle != "" {
		d.WritingStyle = input.WritingStyle
	}
}

// gate reports whether the session may advance past its current step.
func gate(s *Session) error {
	switch s.Step {
	case StepRecipientName:
		if s.Draft.RecipientName == "" {
			return ErrStepIncomplete
		}
	case StepSenderName:
		if s.Draft.SenderName == "" {
			return ErrStepIncomplete
		}
	case StepTitle:
		if s.Draft.Title == "" {
			return ErrStepIncomplete
		}
	}
	return nil
}
