package models

import (
	"time"
)

// Comment represents a comment on a video. Content is mutable only by the
// owner; ownership never transfers.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	VideoID   string    `json:"video_id" db:"video_id"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CommentPage is one page of a video's comments in creation order
type CommentPage struct {
	Comments []*Comment `json:"comments"`
	Page     int        `json:"page"`
	Limit    int        `json:"limit"`
	Total    int        `json:"total"`
}

// DeleteResult reports how many rows a delete actually removed
type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}
