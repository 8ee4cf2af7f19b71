package transactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusStarted.CanTransitionTo(StatusValidating))
	assert.True(t, StatusValidating.CanTransitionTo(StatusReserving))
	assert.True(t, StatusReserving.CanTransitionTo(StatusPersisting))
	assert.True(t, StatusPersisting.CanTransitionTo(StatusCommitted))

	// every live state can abort
	for _, s := range []Status{StatusStarted, StatusValidating, StatusReserving, StatusPersisting} {
		assert.True(t, s.CanTransitionTo(StatusAborted), "%s should abort", s)
	}

	// no skipping ahead
	assert.False(t, StatusStarted.CanTransitionTo(StatusCommitted))
	assert.False(t, StatusValidating.CanTransitionTo(StatusPersisting))

	// terminal states are final
	assert.False(t, StatusCommitted.CanTransitionTo(StatusAborted))
	assert.False(t, StatusAborted.CanTransitionTo(StatusValidating))
	assert.True(t, StatusCommitted.IsTerminal())
	assert.True(t, StatusAborted.IsTerminal())
	assert.False(t, StatusReserving.IsTerminal())
}
