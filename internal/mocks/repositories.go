package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/news-admin/internal/models"
)

// MockNewsRepository is an in-memory implementation of NewsRepository
type MockNewsRepository struct {
	mu     sync.Mutex
	News   map[int64]*models.News
	nextID int64

	// Per-operation failures injected by tests
	ListError   error
	GetError    error
	CreateError error
	UpdateError error
	DeleteError error

	ListCalls   int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

// NewMockNewsRepository creates an empty repository double
func NewMockNewsRepository() *MockNewsRepository {
	return &MockNewsRepository{News: make(map[int64]*models.News)}
}

// Seed stores articles as-is, assigning ids to those without one
func (m *MockNewsRepository) Seed(items ...*models.News) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range items {
		if n.ID == 0 {
			m.nextID++
			n.ID = m.nextID
		} else if n.ID > m.nextID {
			m.nextID = n.ID
		}
		m.News[n.ID] = n
	}
}

func (m *MockNewsRepository) List(ctx context.Context) ([]*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.ListError != nil {
		return nil, m.ListError
	}

	items := make([]*models.News, 0, len(m.News))
	for _, n := range m.News {
		c := *n
		items = append(items, &c)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].PublishedAt.Equal(items[j].PublishedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	return items, nil
}

func (m *MockNewsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	n, ok := m.News[id]
	if !ok {
		return nil, nil
	}
	c := *n
	return &c, nil
}

func (m *MockNewsRepository) Create(ctx context.Context, input *models.NewsInput) (*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.CreateError != nil {
		return nil, m.CreateError
	}

	m.nextID++
	now := time.Now().UTC()
	n := &models.News{
		ID:          m.nextID,
		Title:       input.Title,
		BodyHTML:    input.BodyHTML,
		TargetSite:  input.TargetSite,
		Status:      input.Status,
		PublishedAt: input.PublishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.News[n.ID] = n
	c := *n
	return &c, nil
}

func (m *MockNewsRepository) Update(ctx context.Context, id int64, input *models.NewsInput) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.UpdateError != nil {
		return false, m.UpdateError
	}

	n, ok := m.News[id]
	if !ok {
		return false, nil
	}
	n.Title = input.Title
	n.BodyHTML = input.BodyHTML
	n.TargetSite = input.TargetSite
	n.Status = input.Status
	n.PublishedAt = input.PublishedAt
	n.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (m *MockNewsRepository) Delete(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	if m.DeleteError != nil {
		return false, m.DeleteError
	}

	if _, ok := m.News[id]; !ok {
		return false, nil
	}
	delete(m.News, id)
	return true, nil
}
