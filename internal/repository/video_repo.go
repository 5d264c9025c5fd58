package repository

import (
	"context"
	"database/sql"

	"github.com/video-social-api/internal/database"
	"github.com/video-social-api/internal/models"
)

// videoRepo is the concrete implementation of VideoRepository
type videoRepo struct {
	db *database.DB
}

// NewVideoRepo creates a new video repository
func NewVideoRepo(db *database.DB) VideoRepository {
	return &videoRepo{db: db}
}

// GetByID retrieves a video by ID
func (r *videoRepo) GetByID(ctx context.Context, id string) (*models.Video, error) {
	query := `
		SELECT id, owner_id, title, description, duration_seconds, created_at, updated_at
		FROM videos WHERE id = $1
	`

	var video models.Video
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&video.ID, &video.OwnerID, &video.Title, &video.Description,
		&video.DurationSeconds, &video.CreatedAt, &video.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &video, nil
}

// Exists checks if a video with the given ID exists
func (r *videoRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM videos WHERE id = $1)", id).Scan(&exists)
	return exists, err
}
