package session

import (
	"context"
	"time"

	"github.com/Circulx/Profile-management/pkg/logger"
	"github.com/google/uuid"
)

// Manager owns the load/mutate/save cycle for wizard sessions. All state
// transitions go through the State methods; the manager only adds
// persistence and timestamps.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) save(ctx context.Context, state *State) error {
	state.UpdatedAt = time.Now().UTC()
	return m.store.Save(ctx, state)
}

// Create starts a new wizard session at the business step
func (m *Manager) Create(ctx context.Context) (*State, error) {
	state := NewState(uuid.NewString())
	if err := m.save(ctx, state); err != nil {
		return nil, err
	}

	logger.Info("Wizard session created", map[string]interface{}{
		"session_id": state.ID,
	})
	return state, nil
}

// Current loads a session and applies the business guard before returning
func (m *Manager) Current(ctx context.Context, id string) (*State, error) {
	state, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if state.RequireBusiness() {
		logger.Warn("Session forced back to business step, no business bound", map[string]interface{}{
			"session_id": state.ID,
		})
		if err := m.save(ctx, state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// Advance attempts to move the active step. Invalid targets are a silent
// no-op; the returned state is authoritative either way.
func (m *Manager) Advance(ctx context.Context, id string, step Step) (*State, bool, error) {
	state, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, false, err
	}

	moved := state.Advance(step)
	if moved {
		if err := m.save(ctx, state); err != nil {
			return nil, false, err
		}
	} else {
		logger.Debug("Session advance ignored", map[string]interface{}{
			"session_id":  state.ID,
			"active_step": state.ActiveStep,
			"target_step": step,
		})
	}
	return state, moved, nil
}

// BindBusiness attaches a freshly created business to the session and
// completes the business step
func (m *Manager) BindBusiness(ctx context.Context, id, businessID string) (*State, error) {
	state, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	state.BusinessID = businessID
	state.Complete(StepBusiness)
	if err := m.save(ctx, state); err != nil {
		return nil, err
	}

	logger.Info("Business bound to wizard session", map[string]interface{}{
		"session_id":  state.ID,
		"business_id": businessID,
	})
	return state, nil
}

// CompleteStep records a successful section save for the session
func (m *Manager) CompleteStep(ctx context.Context, id string, step Step) (*State, error) {
	state, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	state.Complete(step)
	if err := m.save(ctx, state); err != nil {
		return nil, err
	}

	if state.Submitted {
		logger.Info("Wizard session submitted", map[string]interface{}{
			"session_id":  state.ID,
			"business_id": state.BusinessID,
		})
	}
	return state, nil
}
