package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/video-social-api/internal/apperrors"
	"github.com/video-social-api/internal/config"
	"github.com/video-social-api/internal/mocks"
	"github.com/video-social-api/internal/models"
	"github.com/video-social-api/internal/repository"
	"github.com/video-social-api/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		Pagination: config.PaginationConfig{DefaultLimit: 10, MaxLimit: 100},
	}
}

func setupCommentService() (*service.Services, *mocks.MockCommentRepository, *mocks.MockVideoRepository) {
	mockComments := mocks.NewMockCommentRepository()
	mockVideos := mocks.NewMockVideoRepository()
	repos := &repository.Repositories{
		User:         mocks.NewMockUserRepository(),
		Video:        mockVideos,
		Comment:      mockComments,
		Subscription: mocks.NewMockSubscriptionRepository(),
	}
	return service.NewServices(repos, testConfig(), zerolog.Nop()), mockComments, mockVideos
}

func addVideo(videos *mocks.MockVideoRepository) string {
	video := &models.Video{
		ID:        uuid.NewString(),
		OwnerID:   uuid.NewString(),
		Title:     "test video",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	videos.Add(video)
	return video.ID
}

func TestCommentService_AddAndRead(t *testing.T) {
	services, mockComments, mockVideos := setupCommentService()
	ctx := context.Background()
	videoID := addVideo(mockVideos)
	authorID := uuid.NewString()

	created, err := services.Comment.Add(ctx, videoID, authorID, "  first!  ")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if created.Content != "first!" {
		t.Errorf("Expected trimmed content %q, got %q", "first!", created.Content)
	}
	if created.OwnerID != authorID {
		t.Errorf("Expected owner %s, got %s", authorID, created.OwnerID)
	}

	stored, _ := mockComments.GetByID(ctx, created.ID)
	if stored == nil {
		t.Fatal("Comment should be persisted")
	}
	if stored.VideoID != videoID {
		t.Errorf("Expected video %s, got %s", videoID, stored.VideoID)
	}
}

func TestCommentService_AddBlankContent(t *testing.T) {
	services, mockComments, mockVideos := setupCommentService()
	ctx := context.Background()
	videoID := addVideo(mockVideos)
	authorID := uuid.NewString()

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "spaces only", content: "   "},
		{name: "tabs and newlines", content: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.Comment.Add(ctx, videoID, authorID, tt.content)
			if err == nil {
				t.Fatal("Expected error for blank content")
			}
			if apperrors.KindOf(err) != apperrors.KindInvalidInput {
				t.Errorf("Expected KindInvalidInput, got %v", apperrors.KindOf(err))
			}
		})
	}

	if len(mockComments.Comments) != 0 {
		t.Errorf("Expected no writes for blank content, got %d comments", len(mockComments.Comments))
	}
}

func TestCommentService_AddVideoNotFound(t *testing.T) {
	services, _, _ := setupCommentService()

	_, err := services.Comment.Add(context.Background(), uuid.NewString(), uuid.NewString(), "hello")
	if err == nil {
		t.Fatal("Expected error for missing video")
	}
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Expected KindNotFound, got %v", apperrors.KindOf(err))
	}
}

func TestCommentService_AddInvalidVideoID(t *testing.T) {
	services, _, _ := setupCommentService()

	_, err := services.Comment.Add(context.Background(), "not-a-uuid", uuid.NewString(), "hello")
	if err == nil {
		t.Fatal("Expected error for malformed video id")
	}
	if apperrors.KindOf(err) != apperrors.KindInvalidIdentifier {
		t.Errorf("Expected KindInvalidIdentifier, got %v", apperrors.KindOf(err))
	}
}

func TestCommentService_ListPagination(t *testing.T) {
	services, _, mockVideos := setupCommentService()
	ctx := context.Background()
	videoID := addVideo(mockVideos)
	authorID := uuid.NewString()

	// Create c1..c12 in order
	for i := 1; i <= 12; i++ {
		if _, err := services.Comment.Add(ctx, videoID, authorID, fmt.Sprintf("c%d", i)); err != nil {
			t.Fatalf("Add c%d failed: %v", i, err)
		}
	}

	page, err := services.Comment.ListForVideo(ctx, videoID, 2, 5)
	if err != nil {
		t.Fatalf("ListForVideo failed: %v", err)
	}

	if page.Total != 12 {
		t.Errorf("Expected total 12, got %d", page.Total)
	}
	if len(page.Comments) != 5 {
		t.Fatalf("Expected 5 comments on page 2, got %d", len(page.Comments))
	}
	for i, comment := range page.Comments {
		want := fmt.Sprintf("c%d", i+6)
		if comment.Content != want {
			t.Errorf("Expected comment %d to be %q, got %q", i, want, comment.Content)
		}
	}
}

func TestCommentService_ListOnePerPage(t *testing.T) {
	services, _, mockVideos := setupCommentService()
	ctx := context.Background()
	videoID := addVideo(mockVideos)

	ownerA := uuid.NewString()
	ownerB := uuid.NewString()
	services.Comment.Add(ctx, videoID, ownerA, "c1")
	services.Comment.Add(ctx, videoID, ownerB, "c2")

	page1, err := services.Comment.ListForVideo(ctx, videoID, 1, 1)
	if err != nil {
		t.Fatalf("ListForVideo page 1 failed: %v", err)
	}
	if len(page1.Comments) != 1 || page1.Comments[0].Content != "c1" {
		t.Errorf("Expected page 1 to hold [c1], got %+v", page1.Comments)
	}

	page2, err := services.Comment.ListForVideo(ctx, videoID, 2, 1)
	if err != nil {
		t.Fatalf("ListForVideo page 2 failed: %v", err)
	}
	if len(page2.Comments) != 1 || page2.Comments[0].Content != "c2" {
		t.Errorf("Expected page 2 to hold [c2], got %+v", page2.Comments)
	}
}

func TestCommentService_ListDefaultsAndCaps(t *testing.T) {
	services, _, mockVideos := setupCommentService()
	ctx := context.Background()
	videoID := addVideo(mockVideos)
	authorID := uuid.NewString()

	for i := 0; i < 15; i++ {
		services.Comment.Add(ctx, videoID, authorID, fmt.Sprintf("c%d", i))
	}

	// page and limit default when unset
	page, err := services.Comment.ListForVideo(ctx, videoID, 0, 0)
	if err != nil {
		t.Fatalf("ListForVideo failed: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Errorf("Expected defaults page=1 limit=10, got page=%d limit=%d", page.Page, page.Limit)
	}
	if len(page.Comments) != 10 {
		t.Errorf("Expected 10 comments with default limit, got %d", len(page.Comments))
	}

	// limit is capped at the configured maximum
	capped, err := services.Comment.ListForVideo(ctx, videoID, 1, 5000)
	if err != nil {
		t.Fatalf("ListForVideo failed: %v", err)
	}
	if capped.Limit != 100 {
		t.Errorf("Expected limit capped at 100, got %d", capped.Limit)
	}
}

func TestCommentService_ListVideoNotFound(t *testing.T) {
	services, _, _ := setupCommentService()

	_, err := services.Comment.ListForVideo(context.Background(), uuid.NewString(), 1, 10)
	if err == nil {
		t.Fatal("Expected error for missing video")
	}
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Expected KindNotFound, got %v", apperrors.KindOf(err))
	}
}

func TestCommentService_UpdateByOwner(t *testing.T) {
	services, mockComments, mockVideos := setupCommentService()
	ctx := context.Background()
	videoID := addVideo(mockVideos)
	ownerID := uuid.NewString()

	created, _ := services.Comment.Add(ctx, videoID, ownerID, "original text")

	updated, err := services.Comment.Update(ctx, created.ID, ownerID, "new text")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Content != "new text" {
		t.Errorf("Expected updated content %q, got %q", "new text", updated.Content)
	}

	// A subsequent read returns exactly the submitted content
	stored, _ := mockComments.GetByID(ctx, created.ID)
	if stored.Content != "new text" {
		t.Errorf("Expected stored content %q, got %q", "new text", stored.Content)
	}
}

func TestCommentService_UpdateByNonOwner(t *testing.T) {
	services, mockComments, mockVideos := setupCommentService()
	ctx := context.Background()
	videoID := addVideo(mockVideos)
	ownerID := uuid.NewString()
	intruderID := uuid.NewString()

	created, _ := services.Comment.Add(ctx, videoID, ownerID, "original text")

	_, err := services.Comment.Update(ctx, created.ID, intruderID, "hijacked")
	if err == nil {
		t.Fatal("Expected error for non-owner update")
	}
	if apperrors.KindOf(err) != apperrors.KindPermissionDenied {
		t.Errorf("Expected KindPermissionDenied, got %v", apperrors.KindOf(err))
	}

	// Stored content is unchanged
	stored, _ := mockComments.GetByID(ctx, created.ID)
	if stored.Content != "original text" {
		t.Errorf("Expected content unchanged, got %q", stored.Content)
	}
}

func TestCommentService_UpdateBlankContent(t *testing.T) {
	services, mockComments, mockVideos := setupCommentService()
	ctx := context.Background()
	videoID := addVideo(mockVideos)
	ownerID := uuid.NewString()

	created, _ := services.Comment.Add(ctx, videoID, ownerID, "original text")

	_, err := services.Comment.Update(ctx, created.ID, ownerID, "   ")
	if err == nil {
		t.Fatal("Expected error for blank content")
	}
	if apperrors.KindOf(err) != apperrors.KindInvalidInput {
		t.Errorf("Expected KindInvalidInput, got %v", apperrors.KindOf(err))
	}

	stored, _ := mockComments.GetByID(ctx, created.ID)
	if stored.Content != "original text" {
		t.Errorf("Expected content unchanged, got %q", stored.Content)
	}
}

func TestCommentService_UpdateNotFound(t *testing.T) {
	services, _, _ := setupCommentService()

	_, err := services.Comment.Update(context.Background(), uuid.NewString(), uuid.NewString(), "new text")
	if err == nil {
		t.Fatal("Expected error for missing comment")
	}
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Expected KindNotFound, got %v", apperrors.KindOf(err))
	}
}

func TestCommentService_DeleteByOwner(t *testing.T) {
	services, mockComments, mockVideos := setupCommentService()
	ctx := context.Background()
	videoID := addVideo(mockVideos)
	ownerID := uuid.NewString()

	created, _ := services.Comment.Add(ctx, videoID, ownerID, "delete me")

	result, err := services.Comment.Delete(ctx, created.ID, ownerID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if result.Deleted != 1 {
		t.Errorf("Expected 1 deleted row, got %d", result.Deleted)
	}

	stored, _ := mockComments.GetByID(ctx, created.ID)
	if stored != nil {
		t.Error("Comment should be gone after delete")
	}
}

func TestCommentService_DeleteByNonOwner(t *testing.T) {
	services, mockComments, mockVideos := setupCommentService()
	ctx := context.Background()
	videoID := addVideo(mockVideos)
	ownerID := uuid.NewString()
	intruderID := uuid.NewString()

	created, _ := services.Comment.Add(ctx, videoID, ownerID, "keep me")

	_, err := services.Comment.Delete(ctx, created.ID, intruderID)
	if err == nil {
		t.Fatal("Expected error for non-owner delete")
	}
	if apperrors.KindOf(err) != apperrors.KindPermissionDenied {
		t.Errorf("Expected KindPermissionDenied, got %v", apperrors.KindOf(err))
	}

	stored, _ := mockComments.GetByID(ctx, created.ID)
	if stored == nil {
		t.Error("Comment should still exist after denied delete")
	}
}

func TestCommentService_DeleteNotFound(t *testing.T) {
	services, _, _ := setupCommentService()

	_, err := services.Comment.Delete(context.Background(), uuid.NewString(), uuid.NewString())
	if err == nil {
		t.Fatal("Expected error for missing comment, never silent success")
	}
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("Expected KindNotFound, got %v", apperrors.KindOf(err))
	}
}
