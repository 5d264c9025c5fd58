package mocks

import (
	"context"

	"github.com/video-social-api/internal/models"
)

// MockSubscriptionService is a mock implementation of SubscriptionService
// for handler tests
type MockSubscriptionService struct {
	ToggleResult    *models.ToggleResult
	ToggleErr       error
	ToggleCalls     int
	LastSubscriber  string
	LastChannel     string
	Subscribers     []models.SubscriberProfile
	SubscribersErr  error
	Channels        []models.ChannelProfile
	ChannelsErr     error
}

func NewMockSubscriptionService() *MockSubscriptionService {
	return &MockSubscriptionService{}
}

func (m *MockSubscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (*models.ToggleResult, error) {
	m.ToggleCalls++
	m.LastSubscriber = subscriberID
	m.LastChannel = channelID
	if m.ToggleErr != nil {
		return nil, m.ToggleErr
	}
	return m.ToggleResult, nil
}

func (m *MockSubscriptionService) GetSubscribers(ctx context.Context, channelID string) ([]models.SubscriberProfile, error) {
	if m.SubscribersErr != nil {
		return nil, m.SubscribersErr
	}
	return m.Subscribers, nil
}

func (m *MockSubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID string) ([]models.ChannelProfile, error) {
	if m.ChannelsErr != nil {
		return nil, m.ChannelsErr
	}
	return m.Channels, nil
}

// MockCommentService is a mock implementation of CommentService for
// handler tests
type MockCommentService struct {
	Page          *models.CommentPage
	ListErr       error
	LastPage      int
	LastLimit     int
	Added         *models.Comment
	AddErr        error
	LastContent   string
	LastRequester string
	Updated       *models.Comment
	UpdateErr     error
	DeleteResult  *models.DeleteResult
	DeleteErr     error
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{}
}

func (m *MockCommentService) ListForVideo(ctx context.Context, videoID string, page, limit int) (*models.CommentPage, error) {
	m.LastPage = page
	m.LastLimit = limit
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Page, nil
}

func (m *MockCommentService) Add(ctx context.Context, videoID, authorID, content string) (*models.Comment, error) {
	m.LastRequester = authorID
	m.LastContent = content
	if m.AddErr != nil {
		return nil, m.AddErr
	}
	return m.Added, nil
}

func (m *MockCommentService) Update(ctx context.Context, commentID, requesterID, newContent string) (*models.Comment, error) {
	m.LastRequester = requesterID
	m.LastContent = newContent
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	return m.Updated, nil
}

func (m *MockCommentService) Delete(ctx context.Context, commentID, requesterID string) (*models.DeleteResult, error) {
	m.LastRequester = requesterID
	if m.DeleteErr != nil {
		return nil, m.DeleteErr
	}
	return m.DeleteResult, nil
}
