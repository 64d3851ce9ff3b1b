package service

import (
	"testing"

	"github.com/anshsahu01/nudge/internal/feed"
	"github.com/anshsahu01/nudge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	return &model.User{ID: "u1", Email: "u1@example.com", Name: "Ash"}
}

func notified(sub *feed.Subscriber) bool {
	select {
	case <-sub.Changed:
		return true
	default:
		return false
	}
}

func TestGoalAddInitialState(t *testing.T) {
	repo := newMockGoalRepo()
	hub := feed.NewHub(0)
	sub, err := hub.Subscribe("ABC123", "watcher")
	require.NoError(t, err)

	svc := NewGoalService(repo, hub)
	goal, err := svc.Add(testUser(), "Ash", "ABC123", "  ship the thing  ", "2024-07-01")

	require.NoError(t, err)
	assert.NotEmpty(t, goal.ID)
	assert.Equal(t, "ship the thing", goal.Text)
	assert.Equal(t, "2024-07-01", goal.DueDate)
	assert.False(t, goal.Completed)
	assert.Nil(t, goal.CompletedAt)
	assert.Equal(t, "u1", goal.UserID)
	assert.Equal(t, "Ash", goal.UserName)
	assert.Equal(t, "u1@example.com", goal.UserEmail)
	assert.Equal(t, "ABC123", goal.GroupCode)
	assert.False(t, goal.CreatedAt.IsZero())
	assert.True(t, notified(sub), "group feed must be notified")
}

func TestGoalAddValidation(t *testing.T) {
	svc := NewGoalService(newMockGoalRepo(), feed.NewHub(0))

	_, err := svc.Add(testUser(), "Ash", "ABC123", "   ", "")
	assert.ErrorIs(t, err, ErrGoalTextRequired)

	_, err = svc.Add(testUser(), "Ash", "ABC123", "run", "next tuesday")
	assert.ErrorIs(t, err, ErrInvalidDueDate)
}

func TestGoalToggleRoundTrip(t *testing.T) {
	repo := newMockGoalRepo()
	hub := feed.NewHub(0)
	svc := NewGoalService(repo, hub)

	goal, err := svc.Add(testUser(), "Ash", "ABC123", "run", "")
	require.NoError(t, err)

	done, err := svc.Toggle("u1", goal.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	undone, err := svc.Toggle("u1", goal.ID)
	require.NoError(t, err)
	assert.False(t, undone.Completed)
	assert.Nil(t, undone.CompletedAt, "reverting must clear the completion timestamp")

	stored, err := repo.ByID(goal.ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed)
	assert.Nil(t, stored.CompletedAt)
}

func TestGoalToggleOwnerOnly(t *testing.T) {
	repo := newMockGoalRepo()
	svc := NewGoalService(repo, feed.NewHub(0))

	goal, err := svc.Add(testUser(), "Ash", "ABC123", "run", "")
	require.NoError(t, err)

	_, err = svc.Toggle("intruder", goal.ID)
	assert.ErrorIs(t, err, ErrNotGoalOwner)
}

func TestGoalDelete(t *testing.T) {
	repo := newMockGoalRepo()
	hub := feed.NewHub(0)
	svc := NewGoalService(repo, hub)

	goal, err := svc.Add(testUser(), "Ash", "ABC123", "run", "")
	require.NoError(t, err)

	err = svc.Delete("intruder", goal.ID)
	assert.ErrorIs(t, err, ErrNotGoalOwner)

	sub, err := hub.Subscribe("ABC123", "watcher")
	require.NoError(t, err)

	err = svc.Delete("u1", goal.ID)
	require.NoError(t, err)
	assert.True(t, notified(sub))

	snapshot, err := svc.Snapshot("ABC123")
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}
