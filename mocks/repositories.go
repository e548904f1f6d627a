package mocks

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"newsorbit-api/models"
	"newsorbit-api/repositories"
)

// MockUserRepository is an in-memory UserRepository
type MockUserRepository struct {
	Users  map[uint]*models.User
	nextID uint
}

// Verify interface compliance
var _ repositories.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func (m *MockUserRepository) Create(user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	copied := *user
	m.Users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	user, ok := m.Users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	for _, user := range m.Users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	users := make([]models.User, 0, len(m.Users))
	for _, user := range m.Users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *MockUserRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	user, ok := m.Users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "status":
			user.Status = value.(models.UserStatus)
		case "can_post":
			user.CanPost = value.(bool)
		case "is_blocked":
			user.IsBlocked = value.(bool)
		case "role":
			user.Role = value.(models.UserRole)
		case "name":
			user.Name = value.(string)
		}
	}
	return nil
}

// MockArticleRepository is an in-memory ArticleRepository
type MockArticleRepository struct {
	Articles map[uint]*models.Article
	nextID   uint

	// IncrementViewsFunc overrides the default increment, letting tests
	// simulate a failing counter write.
	IncrementViewsFunc func(id uint) error
}

// Verify interface compliance
var _ repositories.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[uint]*models.Article),
		nextID:   1,
	}
}

func (m *MockArticleRepository) Create(article *models.Article) error {
	article.ID = m.nextID
	m.nextID++
	copied := *article
	m.Articles[article.ID] = &copied
	return nil
}

func (m *MockArticleRepository) GetByID(id uint) (*models.Article, error) {
	article, ok := m.Articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	var matched []models.Article
	for _, article := range m.Articles {
		if params.Status != "" && article.Status != params.Status {
			continue
		}
		if params.Language != "" && article.Language != params.Language {
			continue
		}
		if params.Category != "" && article.Category != params.Category {
			continue
		}
		if params.AuthorID > 0 && article.AuthorID != params.AuthorID {
			continue
		}
		matched = append(matched, *article)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if params.Limit > 0 {
		start := (params.Page - 1) * params.Limit
		if start > len(matched) {
			start = len(matched)
		}
		end := start + params.Limit
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}

	return matched, total, nil
}

func (m *MockArticleRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	article, ok := m.Articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			article.Title = value.(string)
		case "sub_headline":
			article.SubHeadline = value.(string)
		case "content":
			article.Content = value.(string)
		case "image":
			article.Image = value.(string)
		case "additional_images":
			article.AdditionalImages = value.([]string)
		case "category":
			article.Category = value.(string)
		case "location":
			article.Location = value.(string)
		case "tags":
			article.Tags = value.([]string)
		case "language":
			article.Language = value.(models.Language)
		case "status":
			article.Status = value.(models.ArticleStatus)
		case "created_at":
			article.CreatedAt = value.(time.Time)
		}
	}
	return nil
}

func (m *MockArticleRepository) Delete(id uint) error {
	if _, ok := m.Articles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) IncrementViews(id uint) error {
	if m.IncrementViewsFunc != nil {
		return m.IncrementViewsFunc(id)
	}
	article, ok := m.Articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	article.Views++
	return nil
}

// MockSiteConfigRepository is an in-memory SiteConfigRepository
type MockSiteConfigRepository struct {
	Config *models.SiteConfig
}

// Verify interface compliance
var _ repositories.SiteConfigRepository = (*MockSiteConfigRepository)(nil)

func NewMockSiteConfigRepository() *MockSiteConfigRepository {
	return &MockSiteConfigRepository{}
}

func (m *MockSiteConfigRepository) Get() (*models.SiteConfig, error) {
	if m.Config == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m.Config
	return &copied, nil
}

func (m *MockSiteConfigRepository) Save(cfg *models.SiteConfig) error {
	copied := *cfg
	m.Config = &copied
	return nil
}
