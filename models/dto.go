package models

import "time"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SubmitAction string

const (
	ActionSaveDraft SubmitAction = "save-draft"
	ActionPublish   SubmitAction = "publish"
)

type SubmitArticleRequest struct {
	Title            string       `json:"title" binding:"required,min=1,max=255"`
	SubHeadline      string       `json:"sub_headline"`
	Content          string       `json:"content" binding:"required"`
	Image            string       `json:"image"`
	AdditionalImages []string     `json:"additional_images"`
	Category         string       `json:"category" binding:"required"`
	Location         string       `json:"location"`
	Tags             []string     `json:"tags"`
	Language         Language     `json:"language"`
	Action           SubmitAction `json:"action" binding:"required,oneof=save-draft publish"`
	CreatedAt        *time.Time   `json:"created_at"`
}

// UpdateArticleRequest is a field merge: only non-nil fields are written,
// everything else on the document is left untouched.
type UpdateArticleRequest struct {
	Title            *string        `json:"title"`
	SubHeadline      *string        `json:"sub_headline"`
	Content          *string        `json:"content"`
	Image            *string        `json:"image"`
	AdditionalImages *[]string      `json:"additional_images"`
	Category         *string        `json:"category"`
	Location         *string        `json:"location"`
	Tags             *[]string      `json:"tags"`
	Language         *Language      `json:"language"`
	Status           *ArticleStatus `json:"status"`
	CreatedAt        *time.Time     `json:"created_at"`
}

type UpdateArticleStatusRequest struct {
	Status ArticleStatus `json:"status" binding:"required"`
}

type UpdateUserStatusRequest struct {
	Status UserStatus `json:"status" binding:"required,oneof=active rejected"`
}

type SetBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

type SetCanPostRequest struct {
	CanPost *bool `json:"can_post" binding:"required"`
}

type AdminCreateUserRequest struct {
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	Email    string   `json:"email" binding:"required,email"`
	Phone    string   `json:"phone"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role" binding:"required"`
}

type UpdateSiteConfigRequest struct {
	SiteName   string      `json:"site_name" binding:"required"`
	LogoURL    string      `json:"logo_url"`
	Promotions []Promotion `json:"promotions"`
}

type ArticleListParams struct {
	Language Language      `form:"language"`
	Category string        `form:"category"`
	Status   ArticleStatus `form:"status"`
	AuthorID uint          `form:"author_id"`
	Page     int           `form:"page,default=1"`
	Limit    int           `form:"limit,default=20"`
}
