package models

import (
	"time"
)

type Language string

const (
	LanguageHindi   Language = "hi"
	LanguageEnglish Language = "en"
)

type ArticleStatus string

const (
	ArticleStatusDraft    ArticleStatus = "draft"
	ArticleStatusPending  ArticleStatus = "pending"
	ArticleStatusApproved ArticleStatus = "approved"
	ArticleStatusRejected ArticleStatus = "rejected"
)

// Article is stored as a flat document: image lists and tags are JSON columns,
// the author name is denormalized onto the row.
type Article struct {
	ID               uint          `json:"id" gorm:"primarykey"`
	Title            string        `json:"title" gorm:"not null"`
	SubHeadline      string        `json:"sub_headline,omitempty"`
	Content          string        `json:"content" gorm:"type:text;not null"`
	Image            string        `json:"image"`
	AdditionalImages []string      `json:"additional_images,omitempty" gorm:"serializer:json"`
	Category         string        `json:"category" gorm:"index;not null"`
	Location         string        `json:"location,omitempty"`
	Tags             []string      `json:"tags,omitempty" gorm:"serializer:json"`
	Language         Language      `json:"language" gorm:"index;default:'hi'"`
	AuthorID         uint          `json:"author_id" gorm:"index;not null"`
	AuthorName       string        `json:"author_name"`
	Status           ArticleStatus `json:"status" gorm:"index;default:'draft'"`
	Views            int64         `json:"views" gorm:"default:0"`
	// CreatedAt doubles as the publish timestamp and is caller-settable, so
	// authors may backdate or schedule an article.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l Language) Valid() bool {
	return l == LanguageHindi || l == LanguageEnglish
}

func (s ArticleStatus) Valid() bool {
	switch s {
	case ArticleStatusDraft, ArticleStatusPending, ArticleStatusApproved, ArticleStatusRejected:
		return true
	}
	return false
}
