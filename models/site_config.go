package models

import (
	"time"
)

// SiteConfigKey is the fixed key of the singleton configuration row.
const SiteConfigKey = "main"

type Promotion struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
	Active   bool   `json:"active"`
}

// SiteConfig is a singleton document. Reads fall back to a hardcoded default
// when no row exists; writes always replace the whole document.
type SiteConfig struct {
	Key        string      `json:"-" gorm:"primarykey;size:32"`
	SiteName   string      `json:"site_name"`
	LogoURL    string      `json:"logo_url"`
	Promotions []Promotion `json:"promotions" gorm:"serializer:json"`
	UpdatedAt  time.Time   `json:"-"`
}
