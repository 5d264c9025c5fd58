package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/video-social-api/internal/aggregate"
	"github.com/video-social-api/internal/database"
	"github.com/video-social-api/internal/models"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit
const uniqueViolation = "23505"

// subscriptionRepo is the concrete implementation of SubscriptionRepository
type subscriptionRepo struct {
	db *database.DB
}

// NewSubscriptionRepo creates a new subscription repository
func NewSubscriptionRepo(db *database.DB) SubscriptionRepository {
	return &subscriptionRepo{db: db}
}

// toggleQuery flips the edge in one statement: the DELETE branch runs
// first and the INSERT branch only fires when nothing was deleted. Exactly
// one row comes back, labeled with the branch that produced it.
const toggleQuery = `
	WITH removed AS (
		DELETE FROM subscriptions
		WHERE subscriber_id = $2 AND channel_id = $3
		RETURNING id, subscriber_id, channel_id, created_at
	), added AS (
		INSERT INTO subscriptions (id, subscriber_id, channel_id, created_at)
		SELECT $1, $2, $3, $4
		WHERE NOT EXISTS (SELECT 1 FROM removed)
		RETURNING id, subscriber_id, channel_id, created_at
	)
	SELECT 'subscribed' AS action, id, subscriber_id, channel_id, created_at FROM added
	UNION ALL
	SELECT 'unsubscribed' AS action, id, subscriber_id, channel_id, created_at FROM removed
`

// Toggle atomically creates or removes the (subscriber, channel) edge.
// The UNIQUE(subscriber_id, channel_id) constraint closes the race between
// concurrent toggles: if another request inserts the edge first, this one
// observes the unique violation and reports the existing edge as subscribed,
// so at most one edge ever exists for the pair.
func (r *subscriptionRepo) Toggle(ctx context.Context, edge *models.Subscription) (*models.ToggleResult, error) {
	var (
		action string
		result models.Subscription
	)
	err := r.db.QueryRowContext(ctx, toggleQuery,
		edge.ID, edge.SubscriberID, edge.ChannelID, edge.CreatedAt,
	).Scan(&action, &result.ID, &result.SubscriberID, &result.ChannelID, &result.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		existing, getErr := r.Get(ctx, edge.SubscriberID, edge.ChannelID)
		if getErr != nil {
			return nil, getErr
		}
		if existing != nil {
			return &models.ToggleResult{Action: models.ActionSubscribed, Edge: existing}, nil
		}
		// Edge vanished between the violation and the re-read; surface the
		// original failure to the caller.
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	return &models.ToggleResult{
		Action: models.ToggleAction(action),
		Edge:   &result,
	}, nil
}

// Get retrieves the edge for a (subscriber, channel) pair
func (r *subscriptionRepo) Get(ctx context.Context, subscriberID, channelID string) (*models.Subscription, error) {
	query := `
		SELECT id, subscriber_id, channel_id, created_at
		FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2
	`

	var edge models.Subscription
	err := r.db.QueryRowContext(ctx, query, subscriberID, channelID).Scan(
		&edge.ID, &edge.SubscriberID, &edge.ChannelID, &edge.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &edge, nil
}

// ListSubscribers joins edges whose channel matches against user profiles,
// projecting username, fullname and avatar in edge creation order
func (r *subscriptionRepo) ListSubscribers(ctx context.Context, channelID string) ([]models.SubscriberProfile, error) {
	join := aggregate.Join{
		Source:      "subscriptions",
		SourceMatch: "channel_id",
		SourceKey:   "subscriber_id",
		Target:      "users",
		TargetKey:   "id",
		Fields:      []string{"username", "fullname", "avatar"},
		OrderBy:     "s.created_at, s.id",
	}
	return aggregate.Rows(ctx, r.db, join, channelID, func(rows *sql.Rows) (models.SubscriberProfile, error) {
		var p models.SubscriberProfile
		err := rows.Scan(&p.Username, &p.Fullname, &p.Avatar)
		return p, err
	})
}

// ListChannels joins edges whose subscriber matches against the channel
// owners' profiles, projecting username and avatar in edge creation order
func (r *subscriptionRepo) ListChannels(ctx context.Context, subscriberID string) ([]models.ChannelProfile, error) {
	join := aggregate.Join{
		Source:      "subscriptions",
		SourceMatch: "subscriber_id",
		SourceKey:   "channel_id",
		Target:      "users",
		TargetKey:   "id",
		Fields:      []string{"username", "avatar"},
		OrderBy:     "s.created_at, s.id",
	}
	return aggregate.Rows(ctx, r.db, join, subscriberID, func(rows *sql.Rows) (models.ChannelProfile, error) {
		var p models.ChannelProfile
		err := rows.Scan(&p.Username, &p.Avatar)
		return p, err
	})
}
