package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsorbit-api/config"
	"newsorbit-api/services"
)

// PublicHandler serves the unauthenticated site chrome: configuration and the
// category list.
type PublicHandler struct {
	configService services.ConfigService
}

func NewPublicHandler(configService services.ConfigService) *PublicHandler {
	return &PublicHandler{configService: configService}
}

func (h *PublicHandler) GetSiteConfig(c *gin.Context) {
	cfg, err := h.configService.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *PublicHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":       config.Categories,
		"default_language": config.ForcedDefaultLanguage,
	})
}
