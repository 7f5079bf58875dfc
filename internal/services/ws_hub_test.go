package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWSHubPresence(t *testing.T) {
	hub := NewWSHub()

	assert.False(t, hub.IsOnline("u1"))

	hub.Register("u1", nil)
	assert.True(t, hub.IsOnline("u1"))

	hub.Unregister("u1", nil)
	assert.False(t, hub.IsOnline("u1"))
}

func TestWSHubSendToOfflineUser(t *testing.T) {
	hub := NewWSHub()

	err := hub.SendToUser("nobody", WSMessage{Type: "match_created"})

	assert.Error(t, err)
}
