package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/video-social-api/internal/apperrors"
	"github.com/video-social-api/internal/models"
	"github.com/video-social-api/internal/repository"
	"github.com/video-social-api/internal/validation"
)

// subscriptionService is the concrete implementation of SubscriptionService
type subscriptionService struct {
	subscriptions repository.SubscriptionRepository
	users         repository.UserRepository
	log           zerolog.Logger
}

// newSubscriptionService creates a new SubscriptionService
func newSubscriptionService(repos *repository.Repositories, log zerolog.Logger) *subscriptionService {
	return &subscriptionService{
		subscriptions: repos.Subscription,
		users:         repos.User,
		log:           log.With().Str("service", "subscription").Logger(),
	}
}

// Toggle flips the follow edge between subscriber and channel. The edge is
// created when absent and removed when present; the store performs the flip
// as one conditional statement, so two concurrent toggles for the same pair
// cannot leave a duplicate edge.
func (s *subscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (*models.ToggleResult, error) {
	if err := validation.ValidateID("channel id", channelID); err != nil {
		return nil, err
	}
	if err := validation.ValidateID("subscriber id", subscriberID); err != nil {
		return nil, err
	}
	if subscriberID == channelID {
		return nil, apperrors.InvalidInput("cannot subscribe to your own channel")
	}

	channel, err := s.users.GetByID(ctx, channelID)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve channel", err)
	}
	if channel == nil {
		return nil, apperrors.NotFound("channel not found")
	}

	result, err := s.subscriptions.Toggle(ctx, &models.Subscription{
		ID:           uuid.NewString(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return nil, apperrors.Internal("failed to toggle subscription", err)
	}

	s.log.Info().
		Str("subscriber_id", subscriberID).
		Str("channel_id", channelID).
		Str("action", string(result.Action)).
		Msg("Subscription toggled")

	return result, nil
}

// GetSubscribers lists the profiles of users subscribed to a channel.
// Edges are matched on their channel reference and results come back in
// edge creation order.
func (s *subscriptionService) GetSubscribers(ctx context.Context, channelID string) ([]models.SubscriberProfile, error) {
	if err := validation.ValidateID("channel id", channelID); err != nil {
		return nil, err
	}

	subscribers, err := s.subscriptions.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch subscribers", err)
	}
	return subscribers, nil
}

// GetSubscribedChannels lists the channel profiles a user has subscribed
// to, matched on the edge's subscriber reference in edge creation order
func (s *subscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID string) ([]models.ChannelProfile, error) {
	if err := validation.ValidateID("subscriber id", subscriberID); err != nil {
		return nil, err
	}

	channels, err := s.subscriptions.ListChannels(ctx, subscriberID)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch subscribed channels", err)
	}
	return channels, nil
}
