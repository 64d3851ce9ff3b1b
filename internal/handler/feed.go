package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/anshsahu01/nudge/internal/ctxkeys"
	"github.com/anshsahu01/nudge/internal/derive"
	"github.com/anshsahu01/nudge/internal/feed"
	"github.com/anshsahu01/nudge/internal/service"
)

type feedHandler struct {
	hub         *feed.Hub
	goalService *service.GoalService
	heartbeat   time.Duration
}

func NewFeedHandler(hub *feed.Hub, goalService *service.GoalService, heartbeat time.Duration) *feedHandler {
	return &feedHandler{
		hub:         hub,
		goalService: goalService,
		heartbeat:   heartbeat,
	}
}

// Stream pushes the caller's derived group view over server-sent events.
// An initial view is sent immediately, then a fresh one after every
// change in the group. Each event carries the whole view, never a delta.
func (h *feedHandler) Stream(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	pref := ctxkeys.Preference(r.Context())

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	sub, err := h.hub.Subscribe(pref.GroupCode, user.ID)
	if err != nil {
		if errors.Is(err, feed.ErrMaxClients) {
			respondError(w, http.StatusServiceUnavailable, "feed is at capacity, try again later")
			return
		}
		slog.Error("failed to subscribe to feed", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to open feed")
		return
	}
	defer h.hub.Unsubscribe(sub)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := h.sendView(w, user.ID, pref.GroupCode); err != nil {
		slog.Warn("feed client dropped", "error", err, "user_id", user.ID)
		return
	}
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-sub.Changed:
			if err := h.sendView(w, user.ID, pref.GroupCode); err != nil {
				slog.Warn("feed client dropped", "error", err, "user_id", user.ID)
				return
			}
			flusher.Flush()
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": heartbeat\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (h *feedHandler) sendView(w http.ResponseWriter, userID, groupCode string) error {
	snapshot, err := h.goalService.Snapshot(groupCode)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	view := derive.Compute(snapshot, userID, groupCode, time.Now())
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshal view: %w", err)
	}

	_, err = fmt.Fprintf(w, "event: view\ndata: %s\n\n", data)
	return err
}
