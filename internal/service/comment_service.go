package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/video-social-api/internal/apperrors"
	"github.com/video-social-api/internal/authz"
	"github.com/video-social-api/internal/config"
	"github.com/video-social-api/internal/models"
	"github.com/video-social-api/internal/repository"
	"github.com/video-social-api/internal/validation"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository
	defaults config.PaginationConfig
	log      zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *commentService {
	return &commentService{
		comments: repos.Comment,
		videos:   repos.Video,
		defaults: cfg.Pagination,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// validateContent rejects empty or whitespace-only comment content
func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return apperrors.InvalidInput("comment content cannot be empty")
	}
	return nil
}

// ListForVideo returns one page of a video's comments in creation order.
// page defaults to 1 and limit to the configured default; limit is capped
// at the configured maximum.
func (s *commentService) ListForVideo(ctx context.Context, videoID string, page, limit int) (*models.CommentPage, error) {
	if err := validation.ValidateID("video id", videoID); err != nil {
		return nil, err
	}

	exists, err := s.videos.Exists(ctx, videoID)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve video", err)
	}
	if !exists {
		return nil, apperrors.NotFound("video not found")
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = s.defaults.DefaultLimit
	}
	if limit > s.defaults.MaxLimit {
		limit = s.defaults.MaxLimit
	}

	comments, err := s.comments.ListByVideo(ctx, videoID, limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch comments", err)
	}

	total, err := s.comments.CountByVideo(ctx, videoID)
	if err != nil {
		return nil, apperrors.Internal("failed to count comments", err)
	}

	return &models.CommentPage{
		Comments: comments,
		Page:     page,
		Limit:    limit,
		Total:    total,
	}, nil
}

// Add creates a comment owned by the author against an existing video
func (s *commentService) Add(ctx context.Context, videoID, authorID, content string) (*models.Comment, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := validation.ValidateID("video id", videoID); err != nil {
		return nil, err
	}
	if err := validation.ValidateID("author id", authorID); err != nil {
		return nil, err
	}

	exists, err := s.videos.Exists(ctx, videoID)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve video", err)
	}
	if !exists {
		return nil, apperrors.NotFound("video not found")
	}

	now := time.Now()
	comment := &models.Comment{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		OwnerID:   authorID,
		Content:   strings.TrimSpace(content),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.Internal("failed to create comment", err)
	}

	s.log.Info().
		Str("comment_id", comment.ID).
		Str("video_id", videoID).
		Str("owner_id", authorID).
		Msg("Comment created")

	return comment, nil
}

// Update replaces a comment's content. Only the owner may update, and the
// ownership check runs after existence is confirmed so the two failures
// stay distinguishable.
func (s *commentService) Update(ctx context.Context, commentID, requesterID, newContent string) (*models.Comment, error) {
	if err := validateContent(newContent); err != nil {
		return nil, err
	}
	if err := validation.ValidateID("comment id", commentID); err != nil {
		return nil, err
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve comment", err)
	}
	if comment == nil {
		return nil, apperrors.NotFound("comment not found")
	}

	if err := authz.CheckOwnership(comment.OwnerID, requesterID); err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateContent(ctx, commentID, strings.TrimSpace(newContent))
	if err != nil {
		return nil, apperrors.Internal("failed to update comment", err)
	}
	if updated == nil {
		return nil, apperrors.Internal("comment update affected no rows", nil)
	}

	s.log.Info().Str("comment_id", commentID).Msg("Comment updated")

	return updated, nil
}

// Delete removes a comment. The result carries the store's actual deleted
// row count; zero rows after a passed existence check is a failure, never
// a silent success.
func (s *commentService) Delete(ctx context.Context, commentID, requesterID string) (*models.DeleteResult, error) {
	if err := validation.ValidateID("comment id", commentID); err != nil {
		return nil, err
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, apperrors.Internal("failed to resolve comment", err)
	}
	if comment == nil {
		return nil, apperrors.NotFound("comment not found")
	}

	if err := authz.CheckOwnership(comment.OwnerID, requesterID); err != nil {
		return nil, err
	}

	deleted, err := s.comments.Delete(ctx, commentID)
	if err != nil {
		return nil, apperrors.Internal("failed to delete comment", err)
	}
	if deleted == 0 {
		return nil, apperrors.Internal("comment delete affected no rows", nil)
	}

	s.log.Info().Str("comment_id", commentID).Int64("deleted", deleted).Msg("Comment deleted")

	return &models.DeleteResult{Deleted: deleted}, nil
}
