package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/anshsahu01/nudge/internal/ctxkeys"
	"github.com/anshsahu01/nudge/internal/service"
)

type groupHandler struct {
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *groupHandler {
	return &groupHandler{groupService: groupService}
}

type createGroupRequest struct {
	UserName string `json:"userName"`
}

type joinGroupRequest struct {
	UserName  string `json:"userName"`
	GroupCode string `json:"groupCode"`
}

// Create launches a new group and makes the caller its first member.
func (h *groupHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createGroupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pref, err := h.groupService.Create(user.ID, req.UserName)
	if err != nil {
		respondError(w, groupErrorStatus(err), err.Error())
		return
	}

	slog.Info("group created", "user_id", user.ID, "group_code", pref.GroupCode)
	respondJSON(w, http.StatusCreated, pref)
}

// Join stores an existing group's code as the caller's membership.
func (h *groupHandler) Join(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req joinGroupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pref, err := h.groupService.Join(user.ID, req.UserName, req.GroupCode)
	if err != nil {
		respondError(w, groupErrorStatus(err), err.Error())
		return
	}

	slog.Info("group joined", "user_id", user.ID, "group_code", pref.GroupCode)
	respondJSON(w, http.StatusOK, pref)
}

func groupErrorStatus(err error) int {
	if errors.Is(err, service.ErrNameRequired) || errors.Is(err, service.ErrInvalidGroupCode) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
