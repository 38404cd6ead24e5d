package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Experience is a curated vacation theme shown on the home page. The slug
// is the public identity and never changes after creation; everything else
// is editable from the admin panel.
type Experience struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	Slug                string         `json:"slug" gorm:"uniqueIndex;not null"`
	Name                string         `json:"name" gorm:"not null"`
	NameEn              string         `json:"name_en"`
	Description         string         `json:"description" gorm:"type:text"`
	DetailedDescription string         `json:"detailed_description" gorm:"type:text"`
	PriceRange          string         `json:"price_range"`
	Duration            string         `json:"duration"`
	Location            string         `json:"location"`
	Category            string         `json:"category"`
	ImageURL            string         `json:"image_url" gorm:"type:text"`
	CharacterImageURL   string         `json:"character_image_url" gorm:"type:text"`
	TransitionQuote     string         `json:"transition_quote" gorm:"type:text"`
	Highlights          datatypes.JSON `json:"highlights"`
	CreatedAt           time.Time      `json:"created_date"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"-" gorm:"index"`
}

// ExperienceRequest is the admin create/update payload. Slug is validated
// with the custom "slug" binding rule registered in routes.
type ExperienceRequest struct {
	Slug                string   `json:"slug" binding:"required,slug"`
	Name                string   `json:"name" binding:"required"`
	NameEn              string   `json:"name_en"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailed_description"`
	PriceRange          string   `json:"price_range"`
	Duration            string   `json:"duration"`
	Location            string   `json:"location"`
	Category            string   `json:"category"`
	ImageURL            string   `json:"image_url"`
	CharacterImageURL   string   `json:"character_image_url"`
	TransitionQuote     string   `json:"transition_quote"`
	Highlights          []string `json:"highlights"`
}

// NameBySlug resolves a slug against an already fetched experience list.
// Dangling slugs resolve to the raw slug so booking views never break on
// deleted experiences.
func NameBySlug(experiences []Experience, slug string) string {
	for i := range experiences {
		if experiences[i].Slug == slug {
			return experiences[i].Name
		}
	}
	return slug
}
