package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"matrimonial-backend/internal/models"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// WSMessage represents a WebSocket event sent to a connected user
type WSMessage struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp,omitempty"`
	MatchID   string `json:"match_id,omitempty"`
	PartnerID string `json:"partner_id,omitempty"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// WSHub manages WebSocket connections, one per user, and pushes match
// events to whoever is online.
type WSHub struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn
}

// NewWSHub creates a new WebSocket hub
func NewWSHub() *WSHub {
	return &WSHub{
		connections: make(map[string]*websocket.Conn),
	}
}

// Register registers a new WebSocket connection for a user. An existing
// connection for the same user is closed and replaced.
func (h *WSHub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.connections[userID]; ok {
		old.Close()
	}
	h.connections[userID] = conn
}

// Unregister removes a user's connection if it is the one registered
func (h *WSHub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.connections[userID]; ok && current == conn {
		delete(h.connections, userID)
	}
}

// IsOnline reports whether a user has a registered connection
func (h *WSHub) IsOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.connections[userID]
	return ok
}

// SendToUser sends a message to a connected user
func (h *WSHub) SendToUser(userID string, msg WSMessage) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.connections[userID]
	if !ok {
		return fmt.Errorf("user %s is not connected", userID)
	}
	if err := conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// MatchCreated notifies both members of a new match, if online.
func (h *WSHub) MatchCreated(_ context.Context, match *models.Match) {
	h.notify(match.UserA, match.UserB, match.ID)
	h.notify(match.UserB, match.UserA, match.ID)
}

func (h *WSHub) notify(userID, partnerID, matchID string) {
	if !h.IsOnline(userID) {
		return
	}
	msg := WSMessage{
		Type:      "match_created",
		Timestamp: time.Now().Unix(),
		MatchID:   matchID,
		PartnerID: partnerID,
	}
	if err := h.SendToUser(userID, msg); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to send match event")
	}
}
