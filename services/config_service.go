package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"newsorbit-api/config"
	"newsorbit-api/models"
	"newsorbit-api/repositories"
)

type ConfigService interface {
	Get() (*models.SiteConfig, error)
	Update(req models.UpdateSiteConfigRequest) (*models.SiteConfig, error)
}

type configService struct {
	configRepo repositories.SiteConfigRepository
}

func NewConfigService(configRepo repositories.SiteConfigRepository) ConfigService {
	return &configService{configRepo: configRepo}
}

// Get never fails on an empty store: a missing document yields the hardcoded
// default.
func (s *configService) Get() (*models.SiteConfig, error) {
	cfg, err := s.configRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			def := config.DefaultSiteConfig()
			return &def, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Update replaces the whole configuration document. New promotions get ids
// assigned here.
func (s *configService) Update(req models.UpdateSiteConfigRequest) (*models.SiteConfig, error) {
	promotions := req.Promotions
	if promotions == nil {
		promotions = []models.Promotion{}
	}
	for i := range promotions {
		if promotions[i].ID == "" {
			promotions[i].ID = uuid.NewString()
		}
	}

	cfg := &models.SiteConfig{
		Key:        models.SiteConfigKey,
		SiteName:   req.SiteName,
		LogoURL:    req.LogoURL,
		Promotions: promotions,
	}

	if err := s.configRepo.Save(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
