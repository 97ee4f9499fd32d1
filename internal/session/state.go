package session

import (
	"errors"
	"time"
)

// Step is one stop in the onboarding wizard
type Step string

const (
	StepBusiness  Step = "business"
	StepContact   Step = "contact"
	StepCategory  Step = "category"
	StepAddresses Step = "addresses"
	StepBank      Step = "bank"
	StepDocuments Step = "documents"
)

// ErrUnknownStep is returned for a step name outside the wizard sequence
var ErrUnknownStep = errors.New("unknown wizard step")

// stepOrder is the fixed sequence; the wizard is not a configurable graph
var stepOrder = []Step{
	StepBusiness,
	StepContact,
	StepCategory,
	StepAddresses,
	StepBank,
	StepDocuments,
}

// Steps returns the wizard sequence in order
func Steps() []Step {
	steps := make([]Step, len(stepOrder))
	copy(steps, stepOrder)
	return steps
}

// ParseStep validates a step name from a request
func ParseStep(s string) (Step, error) {
	for _, step := range stepOrder {
		if Step(s) == step {
			return step, nil
		}
	}
	return "", ErrUnknownStep
}

// State is the serializable wizard session state. It replaces the old
// ambient client-global state with an explicit object that round-trips
// through the session store on every request.
type State struct {
	ID             string    `json:"id"`
	BusinessID     string    `json:"business_id,omitempty"`
	ActiveStep     Step      `json:"active_step"`
	CompletedSteps []Step    `json:"completed_steps"`
	Submitted      bool      `json:"submitted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewState starts a fresh session at the business step
func NewState(id string) *State {
	now := time.Now().UTC()
	return &State{
		ID:             id,
		ActiveStep:     StepBusiness,
		CompletedSteps: []Step{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsCompleted reports whether the step has been completed in this session
func (s *State) IsCompleted(step Step) bool {
	for _, done := range s.CompletedSteps {
		if done == step {
			return true
		}
	}
	return false
}

// successor returns the step after the active one, or "" from the last step
func (s *State) successor() Step {
	for i, step := range stepOrder {
		if step == s.ActiveStep && i+1 < len(stepOrder) {
			return stepOrder[i+1]
		}
	}
	return ""
}

// Advance moves the active step. A step may only be entered if it is
// already completed or is exactly next in sequence; anything else is a
// silent no-op. No transition leaves the submitted state. Returns whether
// the active step changed.
func (s *State) Advance(step Step) bool {
	if s.Submitted {
		return false
	}
	if step != s.ActiveStep && (s.IsCompleted(step) || step == s.successor()) {
		s.ActiveStep = step
		return true
	}
	return false
}

// Complete marks the step done. Completing the active step advances the
// wizard to its successor; completing the documents step enters the
// terminal submitted state instead, as there is no step after it.
func (s *State) Complete(step Step) {
	if !s.IsCompleted(step) {
		s.CompletedSteps = append(s.CompletedSteps, step)
	}

	if step == StepDocuments {
		s.Submitted = true
		return
	}

	if step == s.ActiveStep {
		if next := s.successor(); next != "" {
			s.ActiveStep = next
		}
	}
}

// RequireBusiness guards dependent sections: with no business bound the
// only place to be is the business step. Returns whether the active step
// was forced back.
func (s *State) RequireBusiness() bool {
	if s.BusinessID == "" && s.ActiveStep != StepBusiness {
		s.ActiveStep = StepBusiness
		return true
	}
	return false
}
