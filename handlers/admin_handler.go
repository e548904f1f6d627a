package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"newsorbit-api/helper"
	"newsorbit-api/models"
	"newsorbit-api/services"
)

// AdminHandler covers the admin dashboard surface: account review, article
// moderation, and site configuration.
type AdminHandler struct {
	authService    services.AuthService
	articleService services.ArticleService
	configService  services.ConfigService
	Helper         *helper.HTTPHelper
}

func NewAdminHandler(authService services.AuthService, articleService services.ArticleService, configService services.ConfigService) *AdminHandler {
	return &AdminHandler{
		authService:    authService,
		articleService: articleService,
		configService:  configService,
		Helper:         &helper.HTTPHelper{},
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Users loaded", users)
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req models.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.AdminCreate(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User created", user)
}

// UpdateUserStatus handles approval and rejection of pending registrations.
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	id, err := h.paramID(c)
	if err != nil {
		return
	}

	var req models.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if req.Status == models.UserStatusActive {
		err = h.authService.Approve(id)
	} else {
		err = h.authService.Reject(id)
	}
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User status updated", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) SetUserBlocked(c *gin.Context) {
	id, err := h.paramID(c)
	if err != nil {
		return
	}

	var req models.SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.authService.SetBlocked(id, *req.Blocked); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User block flag updated", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) SetUserCanPost(c *gin.Context) {
	id, err := h.paramID(c)
	if err != nil {
		return
	}

	var req models.SetCanPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.authService.SetCanPost(id, *req.CanPost); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User posting permission updated", h.Helper.EmptyJsonMap())
}

// ListArticles is the moderation queue: every status, every language.
func (h *AdminHandler) ListArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 20
	}

	articles, total, err := h.articleService.ListAll(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	paging := h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total))
	h.Helper.SendSuccess(c, "Articles loaded", gin.H{
		"articles":   articles,
		"pagination": paging,
	})
}

func (h *AdminHandler) UpdateArticleStatus(c *gin.Context) {
	id, err := h.paramID(c)
	if err != nil {
		return
	}

	var req models.UpdateArticleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.articleService.SetStatus(id, req.Status); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article status updated", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	id, err := h.paramID(c)
	if err != nil {
		return
	}

	if err := h.articleService.Delete(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted", h.Helper.EmptyJsonMap())
}

func (h *AdminHandler) UpdateSiteConfig(c *gin.Context) {
	var req models.UpdateSiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	cfg, err := h.configService.Update(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Site configuration updated", cfg)
}

func (h *AdminHandler) paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid ID", h.Helper.EmptyJsonMap())
		return 0, err
	}
	return uint(id), nil
}
