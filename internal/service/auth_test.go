package service

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(users *mockUserRepo, prefs *mockPreferenceRepo) *AuthService {
	return NewAuthService(users, prefs, "test-secret-not-for-production", false, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	users := newMockUserRepo()
	svc := newTestAuthService(users, newMockPreferenceRepo())

	user, err := svc.Register("Buddy@Example.com", "a long enough passphrase")
	require.NoError(t, err)
	assert.Equal(t, "buddy@example.com", user.Email, "email must be normalized")
	assert.True(t, user.HasPassword())

	loggedIn, err := svc.Login("buddy@example.com", "a long enough passphrase")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterErrors(t *testing.T) {
	users := newMockUserRepo()
	svc := newTestAuthService(users, newMockPreferenceRepo())

	_, err := svc.Register("not-an-email", "a long enough passphrase")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Register("buddy@example.com", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register("buddy@example.com", "a long enough passphrase")
	require.NoError(t, err)
	_, err = svc.Register("buddy@example.com", "another long passphrase")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLoginErrors(t *testing.T) {
	users := newMockUserRepo()
	svc := newTestAuthService(users, newMockPreferenceRepo())

	_, err := svc.Login("ghost@example.com", "whatever it is")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register("buddy@example.com", "a long enough passphrase")
	require.NoError(t, err)

	_, err = svc.Login("buddy@example.com", "the wrong passphrase")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginFederated(t *testing.T) {
	users := newMockUserRepo()
	svc := newTestAuthService(users, newMockPreferenceRepo())

	// First federated sign-in creates a passwordless account.
	user, err := svc.LoginFederated("buddy@example.com", "Buddy", "https://example.com/a.png")
	require.NoError(t, err)
	assert.False(t, user.HasPassword())
	assert.Equal(t, "Buddy", user.Name)

	// Second sign-in finds the same account.
	again, err := svc.LoginFederated("buddy@example.com", "Renamed", "")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "Buddy", again.Name, "provider name must not overwrite an existing one")

	// Login with password fails for federated-only accounts.
	_, err = svc.Login("buddy@example.com", "a long enough passphrase")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTRoundTrip(t *testing.T) {
	users := newMockUserRepo()
	svc := newTestAuthService(users, newMockPreferenceRepo())

	user, err := svc.Register("buddy@example.com", "a long enough passphrase")
	require.NoError(t, err)

	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := svc.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])

	_, err = svc.VerifyJWT(token + "tampered")
	assert.Error(t, err)
}

func TestSignOutClearsMembership(t *testing.T) {
	users := newMockUserRepo()
	prefs := newMockPreferenceRepo()
	authSvc := newTestAuthService(users, prefs)
	groupSvc := NewGroupService(prefs)

	user, err := authSvc.Register("buddy@example.com", "a long enough passphrase")
	require.NoError(t, err)

	_, err = groupSvc.Create(user.ID, "Buddy")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = authSvc.SignOut(w, user.ID)
	require.NoError(t, err)

	pref, err := groupSvc.Membership(user.ID)
	require.NoError(t, err)
	assert.Nil(t, pref, "sign-out must clear the cached group membership")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}
