package rest

import (
	"time"

	"github.com/google/uuid"
)

// Response shapes are explicit field allow-lists: adding a column to the
// schema never changes the public contract unless a field is added here.

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type Category struct {
	ID     uuid.UUID `json:"id"`
	NameFr string    `json:"nameFr"`
	NameAr string    `json:"nameAr"`
	Slug   string    `json:"slug"`
}

type Region struct {
	ID     uuid.UUID `json:"id"`
	NameFr string    `json:"nameFr"`
	NameAr string    `json:"nameAr"`
	Slug   string    `json:"slug"`
}

type Tag struct {
	ID     uuid.UUID `json:"id"`
	NameFr string    `json:"nameFr"`
	NameAr *string   `json:"nameAr"`
	Slug   string    `json:"slug"`
}

type MediaAsset struct {
	ID         uuid.UUID `json:"id"`
	AssetName  string    `json:"assetName"`
	Type       string    `json:"type"`
	StorageURL string    `json:"storageUrl"`
	AltTextFr  *string   `json:"altTextFr"`
	AltTextAr  *string   `json:"altTextAr"`
}

type Article struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Subtitle        *string     `json:"subtitle"`
	Locale          string      `json:"locale"`
	RTL             bool        `json:"rtl"`
	Slug            string      `json:"slug"`
	Body            string      `json:"body"`
	Author          *User       `json:"author"`
	Editor          *User       `json:"editor"`
	Category        *Category   `json:"category"`
	HeroMedia       *MediaAsset `json:"heroMedia"`
	Featured        bool        `json:"featured"`
	ReadingTimeMin  int         `json:"readingTimeMin"`
	PublishDate     *time.Time  `json:"publishDate"`
	Status          string      `json:"status"`
	CanonicalURL    *string     `json:"canonicalUrl"`
	SEOTitle        *string     `json:"seoTitle"`
	MetaDescription *string     `json:"metaDescription"`
	SourceURLs      []string    `json:"sourceUrls"`
	RegionTags      []Region    `json:"regionTags"`
	Tags            []Tag       `json:"tags"`
	HreflangPeerID  *uuid.UUID  `json:"hreflangPeerId"`
	Version         int         `json:"version"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}
