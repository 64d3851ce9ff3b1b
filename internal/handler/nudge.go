package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/anshsahu01/nudge/internal/ctxkeys"
	"github.com/anshsahu01/nudge/internal/service"
)

type nudgeHandler struct {
	nudgeService *service.NudgeService
}

func NewNudgeHandler(nudgeService *service.NudgeService) *nudgeHandler {
	return &nudgeHandler{nudgeService: nudgeService}
}

type nudgeRequest struct {
	MemberEmail string `json:"memberEmail"`
	MemberName  string `json:"memberName"`
}

type nudgeResponse struct {
	Mailto string `json:"mailto"`
}

// Nudge pokes a group member about their pending goals. The response
// carries a prefilled mailto link the client can open directly.
func (h *nudgeHandler) Nudge(w http.ResponseWriter, r *http.Request) {
	pref := ctxkeys.Preference(r.Context())

	var req nudgeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	mailto, err := h.nudgeService.Nudge(r.Context(), req.MemberEmail, req.MemberName, pref.UserName)
	if err != nil {
		if errors.Is(err, service.ErrNoEmailLinked) {
			respondError(w, http.StatusUnprocessableEntity, "member has no email linked")
			return
		}
		slog.Error("failed to send nudge", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to send nudge")
		return
	}

	respondJSON(w, http.StatusOK, nudgeResponse{Mailto: mailto})
}
