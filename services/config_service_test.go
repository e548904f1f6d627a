package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsorbit-api/mocks"
	"newsorbit-api/models"
	"newsorbit-api/services"
)

func TestGetSiteConfigDefaultsWhenMissing(t *testing.T) {
	svc := services.NewConfigService(mocks.NewMockSiteConfigRepository())

	cfg, err := svc.Get()
	require.NoError(t, err, "a missing document is not an error")

	assert.Equal(t, "Newsorbit India", cfg.SiteName)
	assert.NotEmpty(t, cfg.LogoURL)
	assert.Empty(t, cfg.Promotions)
}

func TestUpdateSiteConfigReplacesDocument(t *testing.T) {
	repo := mocks.NewMockSiteConfigRepository()
	svc := services.NewConfigService(repo)

	_, err := svc.Update(models.UpdateSiteConfigRequest{
		SiteName: "Newsorbit",
		LogoURL:  "/uploads/logo.jpg",
		Promotions: []models.Promotion{
			{ImageURL: "/uploads/promo.jpg", LinkURL: "https://example.com", Active: true},
		},
	})
	require.NoError(t, err)

	// A later update with no promotions replaces the whole document.
	cfg, err := svc.Update(models.UpdateSiteConfigRequest{SiteName: "Newsorbit Two"})
	require.NoError(t, err)
	assert.Equal(t, "Newsorbit Two", cfg.SiteName)
	assert.Empty(t, cfg.Promotions)

	stored, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "Newsorbit Two", stored.SiteName)
}

func TestUpdateSiteConfigAssignsPromotionIDs(t *testing.T) {
	svc := services.NewConfigService(mocks.NewMockSiteConfigRepository())

	cfg, err := svc.Update(models.UpdateSiteConfigRequest{
		SiteName: "Newsorbit",
		Promotions: []models.Promotion{
			{ImageURL: "/uploads/a.jpg", Active: true},
			{ID: "keep-me", ImageURL: "/uploads/b.jpg", Active: false},
		},
	})
	require.NoError(t, err)

	require.Len(t, cfg.Promotions, 2)
	assert.NotEmpty(t, cfg.Promotions[0].ID)
	assert.Equal(t, "keep-me", cfg.Promotions[1].ID)
}
