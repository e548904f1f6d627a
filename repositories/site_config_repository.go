package repositories

import (
	"newsorbit-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteConfigRepository interface {
	Get() (*models.SiteConfig, error)
	Save(cfg *models.SiteConfig) error
}

type siteConfigRepository struct {
	db *gorm.DB
}

func NewSiteConfigRepository(db *gorm.DB) SiteConfigRepository {
	return &siteConfigRepository{db: db}
}

func (r *siteConfigRepository) Get() (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	err := r.db.Where("key = ?", models.SiteConfigKey).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save replaces the whole singleton document, creating it on first write.
func (r *siteConfigRepository) Save(cfg *models.SiteConfig) error {
	cfg.Key = models.SiteConfigKey
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(cfg).Error
}
