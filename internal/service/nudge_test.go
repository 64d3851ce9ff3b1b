package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNudgeBuildsMailto(t *testing.T) {
	email := NewEmailService("", "noreply@example.com", "Nudge", true)
	svc := NewNudgeService(email)

	mailto, err := svc.Nudge(context.Background(), "buddy@example.com", "Buddy", "Ash")
	require.NoError(t, err)
	assert.Contains(t, mailto, "mailto:buddy@example.com?")
	assert.Contains(t, mailto, "subject=")
	assert.Contains(t, mailto, "body=")
}

func TestNudgeRequiresEmail(t *testing.T) {
	email := NewEmailService("", "noreply@example.com", "Nudge", true)
	svc := NewNudgeService(email)

	_, err := svc.Nudge(context.Background(), "", "Buddy", "Ash")
	assert.ErrorIs(t, err, ErrNoEmailLinked)
}

func TestBuildMailtoEscapesBody(t *testing.T) {
	mailto := BuildMailto("buddy@example.com", "Buddy & Co")

	assert.NotContains(t, mailto, " ", "query must be URL encoded")
	assert.Contains(t, mailto, "mailto:buddy@example.com")
}
