package config

import "newsorbit-api/models"

// ForcedDefaultLanguage is applied to every public query that does not name a
// language explicitly. The site intentionally defaults readers to Hindi; this
// is configuration, not a bug.
const ForcedDefaultLanguage = models.LanguageHindi

const DefaultLogoURL = "https://i.imghippo.com/files/KyF9434tVI.jpeg"

type Category struct {
	ID      string `json:"id"`
	LabelEn string `json:"label_en"`
	LabelHi string `json:"label_hi"`
}

// Categories is the fixed category set; article submissions must use one of
// these ids. "top-news" is the aggregate front page, not a stored category.
var Categories = []Category{
	{ID: "top-news", LabelEn: "Top News", LabelHi: "टॉप न्यूज़"},
	{ID: "local", LabelEn: "Local", LabelHi: "राज्य-शहर"},
	{ID: "db-original", LabelEn: "Orbit Original", LabelHi: "Orbit ओरिजिनल"},
	{ID: "sports", LabelEn: "Sports", LabelHi: "स्पोर्ट्स"},
	{ID: "entertainment", LabelEn: "Entertainment", LabelHi: "बॉलीवुड"},
	{ID: "education", LabelEn: "Jobs & Education", LabelHi: "जॉब - एजुकेशन"},
	{ID: "business", LabelEn: "Business", LabelHi: "बिजनेस"},
	{ID: "lifestyle", LabelEn: "Lifestyle", LabelHi: "लाइफस्टाइल"},
	{ID: "national", LabelEn: "National", LabelHi: "देश"},
	{ID: "international", LabelEn: "International", LabelHi: "विदेश"},
	{ID: "tech-auto", LabelEn: "Tech - Auto", LabelHi: "टेक - ऑटो"},
}

func IsValidCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// DefaultSiteConfig is returned when no configuration document has been
// stored yet.
func DefaultSiteConfig() models.SiteConfig {
	return models.SiteConfig{
		Key:        models.SiteConfigKey,
		SiteName:   "Newsorbit India",
		LogoURL:    DefaultLogoURL,
		Promotions: []models.Promotion{},
	}
}
