package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drained(c chan struct{}) bool {
	select {
	case <-c:
		return true
	default:
		return false
	}
}

func TestNotifyReachesOnlyGroupSubscribers(t *testing.T) {
	hub := NewHub(0)
	a, err := hub.Subscribe("ABC123", "u1")
	require.NoError(t, err)
	b, err := hub.Subscribe("XYZ789", "u2")
	require.NoError(t, err)

	hub.Notify("ABC123")

	assert.True(t, drained(a.Changed))
	assert.False(t, drained(b.Changed))
}

func TestNotifyCoalesces(t *testing.T) {
	hub := NewHub(0)
	sub, err := hub.Subscribe("ABC123", "u1")
	require.NoError(t, err)

	hub.Notify("ABC123")
	hub.Notify("ABC123")
	hub.Notify("ABC123")

	assert.True(t, drained(sub.Changed))
	assert.False(t, drained(sub.Changed), "signals must coalesce into one wake-up")
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub(0)
	sub, err := hub.Subscribe("ABC123", "u1")
	require.NoError(t, err)

	hub.Unsubscribe(sub)
	hub.Unsubscribe(sub) // idempotent
	hub.Notify("ABC123")

	assert.False(t, drained(sub.Changed))
	assert.Equal(t, 0, hub.ClientCount())
}

func TestMaxClients(t *testing.T) {
	hub := NewHub(1)
	_, err := hub.Subscribe("ABC123", "u1")
	require.NoError(t, err)

	_, err = hub.Subscribe("ABC123", "u2")
	assert.ErrorIs(t, err, ErrMaxClients)

	assert.Equal(t, 1, hub.ClientCount())
}
