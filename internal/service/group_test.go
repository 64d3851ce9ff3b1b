package service

import (
	"testing"

	"github.com/anshsahu01/nudge/internal/groupcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCreate(t *testing.T) {
	svc := NewGroupService(newMockPreferenceRepo())

	pref, err := svc.Create("u1", "Ash")
	require.NoError(t, err)
	assert.True(t, groupcode.Valid(pref.GroupCode))
	assert.Equal(t, "Ash", pref.UserName)

	stored, err := svc.Membership("u1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, pref.GroupCode, stored.GroupCode)
}

func TestGroupCreateRequiresName(t *testing.T) {
	svc := NewGroupService(newMockPreferenceRepo())

	_, err := svc.Create("u1", "   ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestGroupJoinNormalizesCode(t *testing.T) {
	svc := NewGroupService(newMockPreferenceRepo())

	pref, err := svc.Join("u1", "Ash", " abc123 ")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", pref.GroupCode)
}

func TestGroupJoinRejectsBadCode(t *testing.T) {
	svc := NewGroupService(newMockPreferenceRepo())

	_, err := svc.Join("u1", "Ash", "nope")
	assert.ErrorIs(t, err, ErrInvalidGroupCode)
}

func TestMembershipAbsent(t *testing.T) {
	svc := NewGroupService(newMockPreferenceRepo())

	pref, err := svc.Membership("nobody")
	require.NoError(t, err)
	assert.Nil(t, pref)
}
