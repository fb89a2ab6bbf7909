package rpc

import (
	"time"

	"github.com/google/uuid"

	"github.com/sahelmedia/newsroom/internal/newsroom"
)

type ArticleParams struct {
	//title article title
	Title string `json:"title"`
	//subtitle optional subtitle
	Subtitle *string `json:"subtitle,omitempty"`
	//locale content locale, ar or fr
	Locale string `json:"locale"`
	//slug unique URL-safe identifier
	Slug string `json:"slug"`
	//body article body text
	Body            string      `json:"body"`
	AuthorID        *uuid.UUID  `json:"authorId,omitempty"`
	EditorID        *uuid.UUID  `json:"editorId,omitempty"`
	CategoryID      *uuid.UUID  `json:"categoryId,omitempty"`
	HeroMediaID     *uuid.UUID  `json:"heroMediaId,omitempty"`
	Featured        bool        `json:"featured,omitempty"`
	ReadingTimeMin  int         `json:"readingTimeMin,omitempty"`
	PublishDate     *time.Time  `json:"publishDate,omitempty"`
	Status          string      `json:"status,omitempty"`
	CanonicalURL    *string     `json:"canonicalUrl,omitempty"`
	SEOTitle        *string     `json:"seoTitle,omitempty"`
	MetaDescription *string     `json:"metaDescription,omitempty"`
	SourceURLs      []string    `json:"sourceUrls,omitempty"`
	HreflangPeerID  *uuid.UUID  `json:"hreflangPeerId,omitempty"`
	RegionIDs       []uuid.UUID `json:"regionIds,omitempty"`
	TagIDs          []uuid.UUID `json:"tagIds,omitempty"`
}

func (p ArticleParams) ToModel() newsroom.ArticleParams {
	return newsroom.ArticleParams{
		Title:           p.Title,
		Subtitle:        p.Subtitle,
		Locale:          p.Locale,
		Slug:            p.Slug,
		Body:            p.Body,
		AuthorID:        p.AuthorID,
		EditorID:        p.EditorID,
		CategoryID:      p.CategoryID,
		HeroMediaID:     p.HeroMediaID,
		Featured:        p.Featured,
		ReadingTimeMin:  p.ReadingTimeMin,
		PublishDate:     p.PublishDate,
		Status:          p.Status,
		CanonicalURL:    p.CanonicalURL,
		SEOTitle:        p.SEOTitle,
		MetaDescription: p.MetaDescription,
		SourceURLs:      p.SourceURLs,
		HreflangPeerID:  p.HreflangPeerID,
		RegionIDs:       p.RegionIDs,
		TagIDs:          p.TagIDs,
	}
}

type CategoryParams struct {
	NameFr      string     `json:"nameFr"`
	NameAr      string     `json:"nameAr"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description,omitempty"`
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	Color       *string    `json:"color,omitempty"`
	Weight      int        `json:"weight,omitempty"`
}

func (p CategoryParams) ToModel() newsroom.CategoryParams {
	return newsroom.CategoryParams{
		NameFr:      p.NameFr,
		NameAr:      p.NameAr,
		Slug:        p.Slug,
		Description: p.Description,
		ParentID:    p.ParentID,
		Color:       p.Color,
		Weight:      p.Weight,
	}
}

type TagParams struct {
	NameFr string  `json:"nameFr"`
	NameAr *string `json:"nameAr,omitempty"`
	Slug   string  `json:"slug"`
}

type RegionParams struct {
	NameFr          string  `json:"nameFr"`
	NameAr          string  `json:"nameAr"`
	Slug            string  `json:"slug"`
	GovernorateCode *string `json:"governorateCode,omitempty"`
	RegionType      string  `json:"regionType,omitempty"`
	Color           *string `json:"color,omitempty"`
	Coordinates     *string `json:"coordinates,omitempty"`
}

type MediaAssetParams struct {
	AssetName    string     `json:"assetName"`
	Type         string     `json:"type"`
	StorageURL   string     `json:"storageUrl"`
	AltTextFr    *string    `json:"altTextFr,omitempty"`
	AltTextAr    *string    `json:"altTextAr,omitempty"`
	CaptionFr    *string    `json:"captionFr,omitempty"`
	CaptionAr    *string    `json:"captionAr,omitempty"`
	Credit       *string    `json:"credit,omitempty"`
	License      string     `json:"license,omitempty"`
	FocalPoint   *string    `json:"focalPoint,omitempty"`
	UploadedByID *uuid.UUID `json:"uploadedById,omitempty"`
}

type UserParams struct {
	Email            string  `json:"email"`
	Name             string  `json:"name"`
	Password         string  `json:"password"`
	Phone            *string `json:"phone,omitempty"`
	RoleName         *string `json:"roleName,omitempty"`
	Department       *string `json:"department,omitempty"`
	LocalePreference *string `json:"localePreference,omitempty"`
	Status           string  `json:"status,omitempty"`
}

type Article struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Subtitle       *string     `json:"subtitle"`
	Locale         string      `json:"locale"`
	RTL            bool        `json:"rtl"`
	Slug           string      `json:"slug"`
	Body           string      `json:"body"`
	AuthorID       *uuid.UUID  `json:"authorId"`
	EditorID       *uuid.UUID  `json:"editorId"`
	CategoryID     *uuid.UUID  `json:"categoryId"`
	HeroMediaID    *uuid.UUID  `json:"heroMediaId"`
	Featured       bool        `json:"featured"`
	ReadingTimeMin int         `json:"readingTimeMin"`
	PublishDate    *time.Time  `json:"publishDate"`
	Status         string      `json:"status"`
	HreflangPeerID *uuid.UUID  `json:"hreflangPeerId"`
	RegionIDs      []uuid.UUID `json:"regionIds"`
	TagIDs         []uuid.UUID `json:"tagIds"`
	Version        int         `json:"version"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type Category struct {
	ID       uuid.UUID  `json:"id"`
	NameFr   string     `json:"nameFr"`
	NameAr   string     `json:"nameAr"`
	Slug     string     `json:"slug"`
	ParentID *uuid.UUID `json:"parentId"`
	Weight   int        `json:"weight"`
}

type Tag struct {
	ID     uuid.UUID `json:"id"`
	NameFr string    `json:"nameFr"`
	NameAr *string   `json:"nameAr"`
	Slug   string    `json:"slug"`
}

type Region struct {
	ID         uuid.UUID `json:"id"`
	NameFr     string    `json:"nameFr"`
	NameAr     string    `json:"nameAr"`
	Slug       string    `json:"slug"`
	RegionType string    `json:"regionType"`
}

type MediaAsset struct {
	ID         uuid.UUID `json:"id"`
	AssetName  string    `json:"assetName"`
	Type       string    `json:"type"`
	StorageURL string    `json:"storageUrl"`
	License    string    `json:"license"`
}

type User struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   *string   `json:"role"`
	Status string    `json:"status"`
}
