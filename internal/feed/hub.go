// Package feed fans goal-change notifications out to live dashboard
// streams. Writers never wait on readers: a notification is a coalesced
// signal, and each subscriber re-reads the full snapshot when it wakes,
// so a slow consumer only ever misses intermediate states it would have
// recomputed over anyway.
package feed

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrMaxClients = errors.New("maximum number of feed subscribers reached")

// Subscriber is one live dashboard connection, scoped to a group and a
// viewing user.
type Subscriber struct {
	ID        string
	GroupCode string
	UserID    string

	// Changed carries at most one pending wake-up. The subscriber
	// recomputes from the current snapshot on each receive, so signals
	// between reads coalesce safely.
	Changed chan struct{}
}

type Hub struct {
	mu         sync.RWMutex
	groups     map[string]map[*Subscriber]struct{}
	maxClients int
	count      int
}

// NewHub creates a hub. maxClients <= 0 means unlimited.
func NewHub(maxClients int) *Hub {
	return &Hub{
		groups:     make(map[string]map[*Subscriber]struct{}),
		maxClients: maxClients,
	}
}

// Subscribe registers a live connection for a group.
func (h *Hub) Subscribe(groupCode, userID string) (*Subscriber, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.maxClients > 0 && h.count >= h.maxClients {
		return nil, ErrMaxClients
	}

	sub := &Subscriber{
		ID:        uuid.New().String(),
		GroupCode: groupCode,
		UserID:    userID,
		Changed:   make(chan struct{}, 1),
	}

	set, ok := h.groups[groupCode]
	if !ok {
		set = make(map[*Subscriber]struct{})
		h.groups[groupCode] = set
	}
	set[sub] = struct{}{}
	h.count++

	return sub, nil
}

// Unsubscribe releases a connection. Safe to call more than once.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.groups[sub.GroupCode]
	if !ok {
		return
	}
	if _, ok := set[sub]; !ok {
		return
	}

	delete(set, sub)
	h.count--
	if len(set) == 0 {
		delete(h.groups, sub.GroupCode)
	}
}

// Notify wakes every subscriber of a group. Non-blocking; a subscriber
// with a signal already pending needs no second one.
func (h *Hub) Notify(groupCode string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.groups[groupCode] {
		select {
		case sub.Changed <- struct{}{}:
		default:
		}
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}
