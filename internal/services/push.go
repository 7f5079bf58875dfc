package services

import (
	"context"
	"fmt"

	appconfig "matrimonial-backend/internal/config"
	"matrimonial-backend/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/payload"
	"github.com/sideshow/apns2/token"
)

// PushNotifier delivers an APNs push to both members of a new match.
// Users without a registered device token are skipped.
type PushNotifier struct {
	client *apns2.Client
	topic  string
	users  UserStore
}

// NewPushNotifier creates a token-authenticated APNs notifier
func NewPushNotifier(cfg appconfig.APNSConfig, users UserStore) (*PushNotifier, error) {
	authKey, err := token.AuthKeyFromFile(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load APNs auth key: %w", err)
	}

	client := apns2.NewTokenClient(&token.Token{
		AuthKey: authKey,
		KeyID:   cfg.KeyID,
		TeamID:  cfg.TeamID,
	})
	if cfg.Production {
		client = client.Production()
	} else {
		client = client.Development()
	}

	return &PushNotifier{
		client: client,
		topic:  cfg.Topic,
		users:  users,
	}, nil
}

// MatchCreated pushes a match alert to both users. Failures are logged and
// swallowed; push delivery never fails the swipe.
func (n *PushNotifier) MatchCreated(ctx context.Context, match *models.Match) {
	n.push(ctx, match.UserA, match.UserB)
	n.push(ctx, match.UserB, match.UserA)
}

func (n *PushNotifier) push(ctx context.Context, userID, partnerID string) {
	user, err := n.users.GetByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load user for match push")
		return
	}
	if user.PushToken == nil || *user.PushToken == "" {
		return
	}

	partnerName := ""
	if partner, err := n.users.GetByID(ctx, partnerID); err == nil {
		partnerName = partner.Name
	}

	body := "You have a new match"
	if partnerName != "" {
		body = fmt.Sprintf("You matched with %s", partnerName)
	}

	notification := &apns2.Notification{
		DeviceToken: *user.PushToken,
		Topic:       n.topic,
		Payload: payload.NewPayload().
			AlertTitle("It's a match!").
			AlertBody(body).
			Sound("default"),
	}

	resp, err := n.client.PushWithContext(ctx, notification)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to send match push")
		return
	}
	if !resp.Sent() {
		log.Warn().
			Str("user_id", userID).
			Str("reason", resp.Reason).
			Int("status", resp.StatusCode).
			Msg("Match push rejected by APNs")
	}
}
