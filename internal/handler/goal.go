package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/anshsahu01/nudge/internal/ctxkeys"
	"github.com/anshsahu01/nudge/internal/derive"
	"github.com/anshsahu01/nudge/internal/repository"
	"github.com/anshsahu01/nudge/internal/service"
)

type goalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *goalHandler {
	return &goalHandler{goalService: goalService}
}

type createGoalRequest struct {
	Text    string `json:"text"`
	DueDate string `json:"dueDate"`
}

// Create adds a goal to the caller's group.
func (h *goalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	pref := ctxkeys.Preference(r.Context())

	var req createGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := h.goalService.Add(user, pref.UserName, pref.GroupCode, req.Text, req.DueDate)
	if err != nil {
		if errors.Is(err, service.ErrGoalTextRequired) || errors.Is(err, service.ErrInvalidDueDate) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create goal", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to add goal")
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

// Toggle flips a goal's completion status.
func (h *goalHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.Toggle(user.ID, goalID)
	if err != nil {
		respondError(w, goalErrorStatus(err), goalErrorMessage(err, "failed to update goal"))
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

// Delete removes one of the caller's goals.
func (h *goalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(user.ID, goalID)
	if err != nil {
		respondError(w, goalErrorStatus(err), goalErrorMessage(err, "failed to delete goal"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Dashboard returns the full derived view for the caller: scoped and
// sorted goals, streak, heatmap, roster, and completion percentage.
func (h *goalHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	pref := ctxkeys.Preference(r.Context())

	snapshot, err := h.goalService.Snapshot(pref.GroupCode)
	if err != nil {
		slog.Error("failed to load goal snapshot", "error", err, "group_code", pref.GroupCode)
		respondError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	view := derive.Compute(snapshot, user.ID, pref.GroupCode, time.Now())
	respondJSON(w, http.StatusOK, view)
}

func goalErrorStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrGoalNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotGoalOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func goalErrorMessage(err error, fallback string) string {
	if errors.Is(err, repository.ErrGoalNotFound) || errors.Is(err, service.ErrNotGoalOwner) {
		return err.Error()
	}
	return fallback
}
