package session

import (
	"sync"

	"tripweaver/internal/app/models"
)

// ViewState is the screen the session is currently showing.
type ViewState string

const (
	StateForm    ViewState = "form"
	StateLoading ViewState = "loading"
	StateResult  ViewState = "result"
	StateError   ViewState = "error"
)

// Session is the per-visitor view state machine:
//
//	Form -> Loading -> Result | Error, with Result/Error -> Form on reset.
//
// The transition methods are the only mutation points; the current plan
// and error message are written nowhere else. Only one generation may be
// in flight at a time: a second submit while Loading is rejected without
// side effects.
type Session struct {
	mu      sync.Mutex
	state   ViewState
	plan    *models.TripPlan
	message string
}

// Snapshot is a consistent read of the session for rendering.
type Snapshot struct {
	State   ViewState
	Plan    *models.TripPlan
	Message string
}

func New() *Session {
	return &Session{state: StateForm}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{State: s.state, Plan: s.plan, Message: s.message}
}

// BeginSubmission moves Form -> Loading. While Loading it reports
// ErrSubmissionInFlight and changes nothing; from Result or Error the
// caller must reset first.
func (s *Session) BeginSubmission() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateLoading:
		return models.ErrSubmissionInFlight
	case StateResult, StateError:
		return models.ErrInvalidTransition
	}
	s.state = StateLoading
	s.plan = nil
	s.message = ""
	return nil
}

// Complete moves Loading -> Result and installs the plan.
func (s *Session) Complete(plan *models.TripPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoading {
		return models.ErrInvalidTransition
	}
	s.state = StateResult
	s.plan = plan
	s.message = ""
	return nil
}

// Fail moves Loading -> Error with a human-readable message.
func (s *Session) Fail(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoading {
		return models.ErrInvalidTransition
	}
	s.state = StateError
	s.plan = nil
	s.message = message
	return nil
}

// Reset returns to Form from Result or Error, discarding the plan. Reset
// from Form is a harmless no-op; reset while Loading is rejected since
// the in-flight request always runs to completion.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoading {
		return models.ErrInvalidTransition
	}
	s.state = StateForm
	s.plan = nil
	s.message = ""
	return nil
}
