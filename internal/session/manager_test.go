package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupManagerTest(t *testing.T) (*Manager, context.Context) {
	return NewManager(NewMemoryStore()), context.Background()
}

func TestManager_CreateAndCurrent(t *testing.T) {
	manager, ctx := setupManagerTest(t)

	created, err := manager.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	loaded, err := manager.Current(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, StepBusiness, loaded.ActiveStep)
}

func TestManager_Current_UnknownSession(t *testing.T) {
	manager, ctx := setupManagerTest(t)

	_, err := manager.Current(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_Current_AppliesBusinessGuard(t *testing.T) {
	manager, ctx := setupManagerTest(t)

	created, err := manager.Create(ctx)
	require.NoError(t, err)

	// Complete the business step without ever binding a business
	_, err = manager.CompleteStep(ctx, created.ID, StepBusiness)
	require.NoError(t, err)

	loaded, err := manager.Current(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, StepBusiness, loaded.ActiveStep)

	// The guard is persisted, not just applied to the returned copy
	reloaded, err := manager.Current(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, StepBusiness, reloaded.ActiveStep)
}

func TestManager_AdvanceIsPersistedOnlyWhenMoved(t *testing.T) {
	manager, ctx := setupManagerTest(t)

	created, err := manager.Create(ctx)
	require.NoError(t, err)
	_, err = manager.BindBusiness(ctx, created.ID, "BUSTEST1")
	require.NoError(t, err)

	// Invalid target: silent no-op
	state, moved, err := manager.Advance(ctx, created.ID, StepBank)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, StepContact, state.ActiveStep)

	// Back to the completed business step
	state, moved, err = manager.Advance(ctx, created.ID, StepBusiness)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, StepBusiness, state.ActiveStep)
}

func TestManager_BindBusiness(t *testing.T) {
	manager, ctx := setupManagerTest(t)

	created, err := manager.Create(ctx)
	require.NoError(t, err)

	state, err := manager.BindBusiness(ctx, created.ID, "BUSTEST1")
	require.NoError(t, err)

	assert.Equal(t, "BUSTEST1", state.BusinessID)
	assert.True(t, state.IsCompleted(StepBusiness))
	assert.Equal(t, StepContact, state.ActiveStep)
}

func TestManager_FullWizardFlow(t *testing.T) {
	manager, ctx := setupManagerTest(t)

	created, err := manager.Create(ctx)
	require.NoError(t, err)

	_, err = manager.BindBusiness(ctx, created.ID, "BUSTEST1")
	require.NoError(t, err)

	for _, step := range []Step{StepContact, StepCategory, StepAddresses, StepBank} {
		state, err := manager.CompleteStep(ctx, created.ID, step)
		require.NoError(t, err)
		assert.False(t, state.Submitted)
	}

	state, err := manager.CompleteStep(ctx, created.ID, StepDocuments)
	require.NoError(t, err)
	assert.True(t, state.Submitted)
	assert.Len(t, state.CompletedSteps, len(Steps()))
}
