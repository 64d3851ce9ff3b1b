package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		hasGroup      bool
		want          State
	}{
		{"anonymous", false, false, Unauthenticated},
		{"anonymous with stale group", false, true, Unauthenticated},
		{"signed in without group", true, false, NeedsGroup},
		{"signed in with group", true, true, Active},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.authenticated, tt.hasGroup))
		})
	}
}

func TestTransition(t *testing.T) {
	valid := []struct{ from, to State }{
		{Unauthenticated, NeedsGroup},
		{Unauthenticated, Active},
		{NeedsGroup, Active},
		{Active, Unauthenticated},
	}
	for _, tt := range valid {
		assert.NoError(t, Transition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}

	invalid := []struct{ from, to State }{
		{Active, NeedsGroup},
		{NeedsGroup, Unauthenticated},
		{NeedsGroup, NeedsGroup},
		{Unauthenticated, Unauthenticated},
		{Active, Active},
	}
	for _, tt := range invalid {
		assert.ErrorIs(t, Transition(tt.from, tt.to), ErrInvalidTransition, "%s -> %s", tt.from, tt.to)
	}
}
