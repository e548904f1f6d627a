package repositories

import (
	"newsorbit-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ArticleListParams) ([]models.Article, int64, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	IncrementViews(id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Language != "" {
		query = query.Where("language = ?", params.Language)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	query.Count(&total)

	query = query.Order("created_at desc")

	if params.Limit > 0 {
		offset := (params.Page - 1) * params.Limit
		query = query.Offset(offset).Limit(params.Limit)
	}

	err := query.Find(&articles).Error
	return articles, total, err
}

// UpdateFields is a merge write: only the supplied columns are overwritten.
func (r *articleRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Article{}).Where("id = ?", id).Updates(fields).Error
}

// Delete is a hard delete; there is no recovery path.
func (r *articleRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Article{}, id).Error
}

// IncrementViews bumps the counter atomically in the store. Callers treat a
// failure here as non-fatal.
func (r *articleRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Article{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}
