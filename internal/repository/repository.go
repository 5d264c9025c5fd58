package repository

import (
	"context"

	"github.com/video-social-api/internal/database"
	"github.com/video-social-api/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// VideoRepository defines the interface for video data operations
type VideoRepository interface {
	GetByID(ctx context.Context, id string) (*models.Video, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*models.Comment, error)
	Delete(ctx context.Context, id string) (int64, error)
	ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*models.Comment, error)
	CountByVideo(ctx context.Context, videoID string) (int, error)
}

// SubscriptionRepository defines the interface for follow-edge operations
type SubscriptionRepository interface {
	// Toggle atomically removes the (subscriber, channel) edge if present,
	// or inserts the supplied edge if absent, in a single conditional
	// statement backed by the pair's uniqueness constraint.
	Toggle(ctx context.Context, edge *models.Subscription) (*models.ToggleResult, error)
	Get(ctx context.Context, subscriberID, channelID string) (*models.Subscription, error)
	ListSubscribers(ctx context.Context, channelID string) ([]models.SubscriberProfile, error)
	ListChannels(ctx context.Context, subscriberID string) ([]models.ChannelProfile, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User         UserRepository
	Video        VideoRepository
	Comment      CommentRepository
	Subscription SubscriptionRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepo(db),
		Video:        NewVideoRepo(db),
		Comment:      NewCommentRepo(db),
		Subscription: NewSubscriptionRepo(db),
	}
}
