package handlers

import (
	"net/http"

	"matrimonial-backend/internal/middleware"
	"matrimonial-backend/internal/services"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for MVP
	},
}

// WebSocketHandler handles WebSocket connections for match events
type WebSocketHandler struct {
	hub  *services.WSHub
	auth middleware.Authenticator
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *services.WSHub, auth middleware.Authenticator) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, auth: auth}
}

// HandleWebSocket handles GET /ws?token=<session token>
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, "token required", http.StatusUnauthorized)
		return
	}

	user, err := h.auth.Authenticate(r.Context(), token)
	if err != nil {
		respondError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	h.hub.Register(user.ID, conn)
	defer h.hub.Unregister(user.ID, conn)

	log.Info().Str("user_id", user.ID).Msg("WebSocket connection established")

	for {
		var msg services.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("user_id", user.ID).Msg("WebSocket closed unexpectedly")
			}
			return
		}

		if msg.Type == "ping" {
			if err := h.hub.SendToUser(user.ID, services.WSMessage{Type: "pong"}); err != nil {
				return
			}
		}
	}
}
