package newsroom

import (
	"time"

	"github.com/google/uuid"

	"github.com/sahelmedia/newsroom/internal/db"
)

type Role struct {
	db.Role
}

type User struct {
	db.User
	Role *Role
}

type Region struct {
	db.Region
}

type Tag struct {
	db.Tag
}

type Category struct {
	db.Category
}

type MediaAsset struct {
	db.MediaAsset
	UploadedBy *User
}

type Article struct {
	db.Article
	Author    *User
	Editor    *User
	Category  *Category
	HeroMedia *MediaAsset
	Regions   []Region
	Tags      []Tag
}

// ArticleParams carries the writable fields of an article for the editorial
// surface. The rtl flag is absent on purpose: it is derived from Locale at
// persist time and can never be set by a caller.
type ArticleParams struct {
	Title           string
	Subtitle        *string
	Locale          string
	Slug            string
	Body            string
	AuthorID        *uuid.UUID
	EditorID        *uuid.UUID
	CategoryID      *uuid.UUID
	HeroMediaID     *uuid.UUID
	Featured        bool
	ReadingTimeMin  int
	PublishDate     *time.Time
	Status          string
	CanonicalURL    *string
	SEOTitle        *string
	MetaDescription *string
	SourceURLs      []string
	HreflangPeerID  *uuid.UUID
	RegionIDs       []uuid.UUID
	TagIDs          []uuid.UUID
}

type CategoryParams struct {
	NameFr      string
	NameAr      string
	Slug        string
	Description *string
	ParentID    *uuid.UUID
	Color       *string
	Weight      int
}

type TagParams struct {
	NameFr string
	NameAr *string
	Slug   string
}

type RegionParams struct {
	NameFr          string
	NameAr          string
	Slug            string
	GovernorateCode *string
	RegionType      string
	Color           *string
	Coordinates     *string
}

type MediaAssetParams struct {
	AssetName    string
	Type         string
	StorageURL   string
	AltTextFr    *string
	AltTextAr    *string
	CaptionFr    *string
	CaptionAr    *string
	Credit       *string
	License      string
	FocalPoint   *string
	UploadedByID *uuid.UUID
}

type UserParams struct {
	Email            string
	Name             string
	Password         string
	Phone            *string
	RoleName         *string
	Department       *string
	LocalePreference *string
	Status           string
}
