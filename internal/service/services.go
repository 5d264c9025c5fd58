package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/video-social-api/internal/config"
	"github.com/video-social-api/internal/models"
	"github.com/video-social-api/internal/repository"
)

// SubscriptionService defines the interface for the follow-edge lifecycle
// and subscriber/channel listings
type SubscriptionService interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (*models.ToggleResult, error)
	GetSubscribers(ctx context.Context, channelID string) ([]models.SubscriberProfile, error)
	GetSubscribedChannels(ctx context.Context, subscriberID string) ([]models.ChannelProfile, error)
}

// CommentService defines the interface for the comment lifecycle and
// paginated, video-scoped retrieval
type CommentService interface {
	ListForVideo(ctx context.Context, videoID string, page, limit int) (*models.CommentPage, error)
	Add(ctx context.Context, videoID, authorID, content string) (*models.Comment, error)
	Update(ctx context.Context, commentID, requesterID, newContent string) (*models.Comment, error)
	Delete(ctx context.Context, commentID, requesterID string) (*models.DeleteResult, error)
}

// Services holds all service interfaces
type Services struct {
	Subscription SubscriptionService
	Comment      CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Subscription: newSubscriptionService(repos, log),
		Comment:      newCommentService(repos, cfg, log),
	}
}
