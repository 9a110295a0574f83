package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", ErrContactNotFound)

	assert.True(t, errors.Is(wrapped, ErrContactNotFound))
	assert.False(t, errors.Is(wrapped, ErrCampaignNotFound))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsAlreadyExists(wrapped))
}

func TestAlreadyExistsErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("create failed: %w", ErrWorkspaceExists)

	assert.True(t, errors.Is(wrapped, ErrWorkspaceExists))
	assert.False(t, errors.Is(wrapped, ErrContactExists))
	assert.True(t, IsAlreadyExists(wrapped))
}

func TestPlanLimitError(t *testing.T) {
	err := &PlanLimitError{Resource: "contacts", Limit: 500}

	assert.Equal(t, "plan limit reached: contacts (limit 500)", err.Error())
	assert.True(t, IsPlanLimit(fmt.Errorf("import aborted: %w", err)))
	assert.True(t, errors.Is(err, ErrCreditsExhausted)) // any PlanLimitError matches
}

func TestInvalidTransitionError(t *testing.T) {
	err := &InvalidTransitionError{Entity: "campaign", From: "sent", To: "scheduled"}

	assert.Equal(t, "campaign cannot move from sent to scheduled", err.Error())
	assert.True(t, IsInvalidTransition(fmt.Errorf("schedule: %w", err)))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "organization not found", ErrOrganizationNotFound.Error())
	assert.Equal(t, "contact already exists with this email in the workspace", ErrContactExists.Error())
	assert.Equal(t, "invalid, expired, or already used oauth state", ErrInvalidOAuthState.Error())
}
