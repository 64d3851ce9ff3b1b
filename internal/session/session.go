// Package session models the top-level screen a signed-in (or anonymous)
// user should land on. The state is derived, never stored: identity plus
// the cached group membership fully determine it.
package session

import (
	"errors"
)

type State string

const (
	// Unauthenticated: no valid identity; show sign-in.
	Unauthenticated State = "unauthenticated"
	// NeedsGroup: signed in but no group membership cached; show onboarding.
	NeedsGroup State = "needs-group"
	// Active: signed in with a group; show the dashboard.
	Active State = "active"
)

var ErrInvalidTransition = errors.New("invalid session transition")

// Derive maps identity and membership to the session state.
func Derive(authenticated, hasGroup bool) State {
	switch {
	case !authenticated:
		return Unauthenticated
	case !hasGroup:
		return NeedsGroup
	default:
		return Active
	}
}

// Transition validates a state change. Sign-in lands on NeedsGroup or
// Active depending on cached membership, a create-or-join action
// activates the session, and sign-out returns an active session to
// Unauthenticated. Nothing else is valid.
func Transition(from, to State) error {
	switch from {
	case Unauthenticated:
		if to == NeedsGroup || to == Active {
			return nil
		}
	case NeedsGroup:
		if to == Active {
			return nil
		}
	case Active:
		if to == Unauthenticated {
			return nil
		}
	}
	return ErrInvalidTransition
}
