package mocks

import (
	"context"

	"github.com/video-social-api/internal/models"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users  map[string]*models.User
	GetErr error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Add(user *models.User) {
	m.Users[user.ID] = user
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Users[id], nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.GetErr != nil {
		return false, m.GetErr
	}
	_, exists := m.Users[id]
	return exists, nil
}

// MockVideoRepository is a mock implementation of VideoRepository
type MockVideoRepository struct {
	Videos map[string]*models.Video
	GetErr error
}

func NewMockVideoRepository() *MockVideoRepository {
	return &MockVideoRepository{
		Videos: make(map[string]*models.Video),
	}
}

func (m *MockVideoRepository) Add(video *models.Video) {
	m.Videos[video.ID] = video
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id string) (*models.Video, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Videos[id], nil
}

func (m *MockVideoRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.GetErr != nil {
		return false, m.GetErr
	}
	_, exists := m.Videos[id]
	return exists, nil
}

// MockCommentRepository is an in-memory mock of CommentRepository that
// preserves insertion order so pagination is deterministic
type MockCommentRepository struct {
	Comments  map[string]*models.Comment
	Order     []string
	CreateErr error
	GetErr    error
	UpdateErr error
	DeleteErr error
	ListErr   error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	stored := *comment
	m.Comments[comment.ID] = &stored
	m.Order = append(m.Order, comment.ID)
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	comment, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	copied := *comment
	return &copied, nil
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id, content string) (*models.Comment, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	comment, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	comment.Content = content
	copied := *comment
	return &copied, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) (int64, error) {
	if m.DeleteErr != nil {
		return 0, m.DeleteErr
	}
	if _, ok := m.Comments[id]; !ok {
		return 0, nil
	}
	delete(m.Comments, id)
	for i, existing := range m.Order {
		if existing == id {
			m.Order = append(m.Order[:i], m.Order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID string, limit, offset int) ([]*models.Comment, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	matched := make([]*models.Comment, 0)
	for _, id := range m.Order {
		if comment := m.Comments[id]; comment != nil && comment.VideoID == videoID {
			copied := *comment
			matched = append(matched, &copied)
		}
	}
	if offset >= len(matched) {
		return []*models.Comment{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (m *MockCommentRepository) CountByVideo(ctx context.Context, videoID string) (int, error) {
	if m.ListErr != nil {
		return 0, m.ListErr
	}
	count := 0
	for _, comment := range m.Comments {
		if comment.VideoID == videoID {
			count++
		}
	}
	return count, nil
}

// MockSubscriptionRepository is an in-memory mock of SubscriptionRepository.
// Edges are keyed by (subscriber, channel) so at most one edge per pair can
// exist, mirroring the store's uniqueness constraint. Listings join against
// the Users map the way the real repository joins against the users table.
type MockSubscriptionRepository struct {
	Edges     map[string]*models.Subscription
	Order     []string
	Users     map[string]*models.User
	ToggleErr error
	ListErr   error
}

func NewMockSubscriptionRepository() *MockSubscriptionRepository {
	return &MockSubscriptionRepository{
		Edges: make(map[string]*models.Subscription),
		Users: make(map[string]*models.User),
	}
}

func edgeKey(subscriberID, channelID string) string {
	return subscriberID + "|" + channelID
}

func (m *MockSubscriptionRepository) Toggle(ctx context.Context, edge *models.Subscription) (*models.ToggleResult, error) {
	if m.ToggleErr != nil {
		return nil, m.ToggleErr
	}
	key := edgeKey(edge.SubscriberID, edge.ChannelID)
	if existing, ok := m.Edges[key]; ok {
		delete(m.Edges, key)
		for i, k := range m.Order {
			if k == key {
				m.Order = append(m.Order[:i], m.Order[i+1:]...)
				break
			}
		}
		return &models.ToggleResult{Action: models.ActionUnsubscribed, Edge: existing}, nil
	}
	stored := *edge
	m.Edges[key] = &stored
	m.Order = append(m.Order, key)
	return &models.ToggleResult{Action: models.ActionSubscribed, Edge: &stored}, nil
}

func (m *MockSubscriptionRepository) Get(ctx context.Context, subscriberID, channelID string) (*models.Subscription, error) {
	edge, ok := m.Edges[edgeKey(subscriberID, channelID)]
	if !ok {
		return nil, nil
	}
	copied := *edge
	return &copied, nil
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]models.SubscriberProfile, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	profiles := make([]models.SubscriberProfile, 0)
	for _, key := range m.Order {
		edge := m.Edges[key]
		if edge == nil || edge.ChannelID != channelID {
			continue
		}
		user, ok := m.Users[edge.SubscriberID]
		if !ok {
			// Inner-join semantics: unmatched edges are dropped
			continue
		}
		profiles = append(profiles, models.SubscriberProfile{
			Username: user.Username,
			Fullname: user.Fullname,
			Avatar:   user.Avatar,
		})
	}
	return profiles, nil
}

func (m *MockSubscriptionRepository) ListChannels(ctx context.Context, subscriberID string) ([]models.ChannelProfile, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	profiles := make([]models.ChannelProfile, 0)
	for _, key := range m.Order {
		edge := m.Edges[key]
		if edge == nil || edge.SubscriberID != subscriberID {
			continue
		}
		user, ok := m.Users[edge.ChannelID]
		if !ok {
			continue
		}
		profiles = append(profiles, models.ChannelProfile{
			Username: user.Username,
			Avatar:   user.Avatar,
		})
	}
	return profiles, nil
}
