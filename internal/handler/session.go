package handler

import (
	"net/http"

	"github.com/anshsahu01/nudge/internal/ctxkeys"
	"github.com/anshsahu01/nudge/internal/model"
	"github.com/anshsahu01/nudge/internal/session"
)

type sessionHandler struct{}

func NewSessionHandler() *sessionHandler {
	return &sessionHandler{}
}

type sessionResponse struct {
	State      session.State     `json:"state"`
	User       *model.User       `json:"user,omitempty"`
	Membership *model.Preference `json:"membership,omitempty"`
}

// Session reports which top-level screen the caller should see: sign-in,
// group onboarding, or the dashboard.
func (h *sessionHandler) Session(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	pref := ctxkeys.Preference(r.Context())

	resp := sessionResponse{
		State: session.Derive(user != nil, pref != nil),
	}
	if user != nil {
		resp.User = user
		resp.Membership = pref
	}

	respondJSON(w, http.StatusOK, resp)
}
