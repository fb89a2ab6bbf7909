// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
	"github.com/google/uuid"
)

func init() {
	// join models must be known to the ORM before any many2many query
	orm.RegisterTable((*ArticleRegion)(nil))
	orm.RegisterTable((*ArticleTag)(nil))
}

var Columns = struct {
	Article struct {
		ID, Title, Subtitle, Locale, RTL, Slug, Body, AuthorID, EditorID,
		CategoryID, HeroMediaID, Featured, ReadingTimeMin, PublishDate, Status,
		CanonicalURL, SEOTitle, MetaDescription, SourceURLs, HreflangPeerID,
		Version, CreatedAt, UpdatedAt string

		Author, Editor, Category, HeroMedia, HreflangPeer, Regions, Tags string
	}
	ArticleRegion struct {
		ArticleID, RegionID string
	}
	ArticleTag struct {
		ArticleID, TagID string
	}
	Category struct {
		ID, NameFr, NameAr, Slug, Description, ParentID, Color, Weight,
		CreatedAt, UpdatedAt string

		Parent string
	}
	MediaAsset struct {
		ID, AssetName, Type, StorageURL, AltTextFr, AltTextAr, CaptionFr,
		CaptionAr, Credit, License, FocalPoint, UploadedByID, CreatedAt,
		UpdatedAt string

		UploadedBy string
	}
	Region struct {
		ID, NameFr, NameAr, Slug, GovernorateCode, RegionType, Color,
		Coordinates, CreatedAt, UpdatedAt string
	}
	Role struct {
		ID, Name, CreatedAt, UpdatedAt string
	}
	Tag struct {
		ID, NameFr, NameAr, Slug, CreatedAt, UpdatedAt string
	}
	User struct {
		ID, Email, Name, PasswordHash, Phone, RoleID, Department,
		LocalePreference, Status, CreatedAt, UpdatedAt string

		Role string
	}
}{
	Article: struct {
		ID, Title, Subtitle, Locale, RTL, Slug, Body, AuthorID, EditorID,
		CategoryID, HeroMediaID, Featured, ReadingTimeMin, PublishDate, Status,
		CanonicalURL, SEOTitle, MetaDescription, SourceURLs, HreflangPeerID,
		Version, CreatedAt, UpdatedAt string

		Author, Editor, Category, HeroMedia, HreflangPeer, Regions, Tags string
	}{
		ID:              "articleId",
		Title:           "title",
		Subtitle:        "subtitle",
		Locale:          "locale",
		RTL:             "rtl",
		Slug:            "slug",
		Body:            "body",
		AuthorID:        "authorId",
		EditorID:        "editorId",
		CategoryID:      "categoryId",
		HeroMediaID:     "heroMediaId",
		Featured:        "featured",
		ReadingTimeMin:  "readingTimeMin",
		PublishDate:     "publishDate",
		Status:          "status",
		CanonicalURL:    "canonicalUrl",
		SEOTitle:        "seoTitle",
		MetaDescription: "metaDescription",
		SourceURLs:      "sourceUrls",
		HreflangPeerID:  "hreflangPeerId",
		Version:         "version",
		CreatedAt:       "createdAt",
		UpdatedAt:       "updatedAt",

		Author:       "Author",
		Editor:       "Editor",
		Category:     "Category",
		HeroMedia:    "HeroMedia",
		HreflangPeer: "HreflangPeer",
		Regions:      "Regions",
		Tags:         "Tags",
	},
	ArticleRegion: struct {
		ArticleID, RegionID string
	}{
		ArticleID: "articleId",
		RegionID:  "regionId",
	},
	ArticleTag: struct {
		ArticleID, TagID string
	}{
		ArticleID: "articleId",
		TagID:     "tagId",
	},
	Category: struct {
		ID, NameFr, NameAr, Slug, Description, ParentID, Color, Weight,
		CreatedAt, UpdatedAt string

		Parent string
	}{
		ID:          "categoryId",
		NameFr:      "nameFr",
		NameAr:      "nameAr",
		Slug:        "slug",
		Description: "description",
		ParentID:    "parentId",
		Color:       "color",
		Weight:      "weight",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",

		Parent: "Parent",
	},
	MediaAsset: struct {
		ID, AssetName, Type, StorageURL, AltTextFr, AltTextAr, CaptionFr,
		CaptionAr, Credit, License, FocalPoint, UploadedByID, CreatedAt,
		UpdatedAt string

		UploadedBy string
	}{
		ID:           "mediaAssetId",
		AssetName:    "assetName",
		Type:         "type",
		StorageURL:   "storageUrl",
		AltTextFr:    "altTextFr",
		AltTextAr:    "altTextAr",
		CaptionFr:    "captionFr",
		CaptionAr:    "captionAr",
		Credit:       "credit",
		License:      "license",
		FocalPoint:   "focalPoint",
		UploadedByID: "uploadedById",
		CreatedAt:    "createdAt",
		UpdatedAt:    "updatedAt",

		UploadedBy: "UploadedBy",
	},
	Region: struct {
		ID, NameFr, NameAr, Slug, GovernorateCode, RegionType, Color,
		Coordinates, CreatedAt, UpdatedAt string
	}{
		ID:              "regionId",
		NameFr:          "nameFr",
		NameAr:          "nameAr",
		Slug:            "slug",
		GovernorateCode: "governorateCode",
		RegionType:      "regionType",
		Color:           "color",
		Coordinates:     "coordinates",
		CreatedAt:       "createdAt",
		UpdatedAt:       "updatedAt",
	},
	Role: struct {
		ID, Name, CreatedAt, UpdatedAt string
	}{
		ID:        "roleId",
		Name:      "name",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
	Tag: struct {
		ID, NameFr, NameAr, Slug, CreatedAt, UpdatedAt string
	}{
		ID:        "tagId",
		NameFr:    "nameFr",
		NameAr:    "nameAr",
		Slug:      "slug",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",
	},
	User: struct {
		ID, Email, Name, PasswordHash, Phone, RoleID, Department,
		LocalePreference, Status, CreatedAt, UpdatedAt string

		Role string
	}{
		ID:               "userId",
		Email:            "email",
		Name:             "name",
		PasswordHash:     "passwordHash",
		Phone:            "phone",
		RoleID:           "roleId",
		Department:       "department",
		LocalePreference: "localePreference",
		Status:           "status",
		CreatedAt:        "createdAt",
		UpdatedAt:        "updatedAt",

		Role: "Role",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	ArticleRegion struct {
		Name, Alias string
	}
	ArticleTag struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	MediaAsset struct {
		Name, Alias string
	}
	Region struct {
		Name, Alias string
	}
	Role struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	ArticleRegion: struct {
		Name, Alias string
	}{
		Name:  "articleRegions",
		Alias: "articleRegions",
	},
	ArticleTag: struct {
		Name, Alias string
	}{
		Name:  "articleTags",
		Alias: "articleTags",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	MediaAsset: struct {
		Name, Alias string
	}{
		Name:  "mediaAssets",
		Alias: "t",
	},
	Region: struct {
		Name, Alias string
	}{
		Name:  "regions",
		Alias: "t",
	},
	Role: struct {
		Name, Alias string
	}{
		Name:  "roles",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID              uuid.UUID  `pg:"articleId,pk,type:uuid"`
	Title           string     `pg:"title,use_zero"`
	Subtitle        *string    `pg:"subtitle"`
	Locale          string     `pg:"locale,use_zero"`
	RTL             bool       `pg:"rtl,use_zero"`
	Slug            string     `pg:"slug,use_zero"`
	Body            string     `pg:"body,use_zero"`
	AuthorID        *uuid.UUID `pg:"authorId,type:uuid"`
	EditorID        *uuid.UUID `pg:"editorId,type:uuid"`
	CategoryID      *uuid.UUID `pg:"categoryId,type:uuid"`
	HeroMediaID     *uuid.UUID `pg:"heroMediaId,type:uuid"`
	Featured        bool       `pg:"featured,use_zero"`
	ReadingTimeMin  int        `pg:"readingTimeMin,use_zero"`
	PublishDate     *time.Time `pg:"publishDate"`
	Status          string     `pg:"status,use_zero"`
	CanonicalURL    *string    `pg:"canonicalUrl"`
	SEOTitle        *string    `pg:"seoTitle"`
	MetaDescription *string    `pg:"metaDescription"`
	SourceURLs      []string   `pg:"sourceUrls,json_use_number"`
	HreflangPeerID  *uuid.UUID `pg:"hreflangPeerId,type:uuid"`
	Version         int        `pg:"version,use_zero"`
	CreatedAt       time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt       time.Time  `pg:"updatedAt,use_zero"`

	Author       *User       `pg:"fk:authorId,rel:has-one"`
	Editor       *User       `pg:"fk:editorId,rel:has-one"`
	Category     *Category   `pg:"fk:categoryId,rel:has-one"`
	HeroMedia    *MediaAsset `pg:"fk:heroMediaId,rel:has-one"`
	HreflangPeer *Article    `pg:"fk:hreflangPeerId,rel:has-one"`
	Regions      []Region    `pg:"many2many:articleRegions,fk:articleId,join_fk:regionId"`
	Tags         []Tag       `pg:"many2many:articleTags,fk:articleId,join_fk:tagId"`
}

type ArticleRegion struct {
	tableName struct{} `pg:"articleRegions,alias:articleRegions,discard_unknown_columns"`

	ArticleID uuid.UUID `pg:"articleId,pk,type:uuid"`
	RegionID  uuid.UUID `pg:"regionId,pk,type:uuid"`
}

type ArticleTag struct {
	tableName struct{} `pg:"articleTags,alias:articleTags,discard_unknown_columns"`

	ArticleID uuid.UUID `pg:"articleId,pk,type:uuid"`
	TagID     uuid.UUID `pg:"tagId,pk,type:uuid"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          uuid.UUID  `pg:"categoryId,pk,type:uuid"`
	NameFr      string     `pg:"nameFr,use_zero"`
	NameAr      string     `pg:"nameAr,use_zero"`
	Slug        string     `pg:"slug,use_zero"`
	Description *string    `pg:"description"`
	ParentID    *uuid.UUID `pg:"parentId,type:uuid"`
	Color       *string    `pg:"color"`
	Weight      int        `pg:"weight,use_zero"`
	CreatedAt   time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time  `pg:"updatedAt,use_zero"`

	Parent *Category `pg:"fk:parentId,rel:has-one"`
}

type MediaAsset struct {
	tableName struct{} `pg:"mediaAssets,alias:t,discard_unknown_columns"`

	ID           uuid.UUID  `pg:"mediaAssetId,pk,type:uuid"`
	AssetName    string     `pg:"assetName,use_zero"`
	Type         string     `pg:"type,use_zero"`
	StorageURL   string     `pg:"storageUrl,use_zero"`
	AltTextFr    *string    `pg:"altTextFr"`
	AltTextAr    *string    `pg:"altTextAr"`
	CaptionFr    *string    `pg:"captionFr"`
	CaptionAr    *string    `pg:"captionAr"`
	Credit       *string    `pg:"credit"`
	License      string     `pg:"license,use_zero"`
	FocalPoint   *string    `pg:"focalPoint"`
	UploadedByID *uuid.UUID `pg:"uploadedById,type:uuid"`
	CreatedAt    time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt    time.Time  `pg:"updatedAt,use_zero"`

	UploadedBy *User `pg:"fk:uploadedById,rel:has-one"`
}

type Region struct {
	tableName struct{} `pg:"regions,alias:t,discard_unknown_columns"`

	ID              uuid.UUID `pg:"regionId,pk,type:uuid"`
	NameFr          string    `pg:"nameFr,use_zero"`
	NameAr          string    `pg:"nameAr,use_zero"`
	Slug            string    `pg:"slug,use_zero"`
	GovernorateCode *string   `pg:"governorateCode"`
	RegionType      string    `pg:"regionType,use_zero"`
	Color           *string   `pg:"color"`
	Coordinates     *string   `pg:"coordinates"`
	CreatedAt       time.Time `pg:"createdAt,use_zero"`
	UpdatedAt       time.Time `pg:"updatedAt,use_zero"`
}

type Role struct {
	tableName struct{} `pg:"roles,alias:t,discard_unknown_columns"`

	ID        uuid.UUID `pg:"roleId,pk,type:uuid"`
	Name      string    `pg:"name,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID        uuid.UUID `pg:"tagId,pk,type:uuid"`
	NameFr    string    `pg:"nameFr,use_zero"`
	NameAr    *string   `pg:"nameAr"`
	Slug      string    `pg:"slug,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID               uuid.UUID  `pg:"userId,pk,type:uuid"`
	Email            string     `pg:"email,use_zero"`
	Name             string     `pg:"name,use_zero"`
	PasswordHash     string     `pg:"passwordHash,use_zero"`
	Phone            *string    `pg:"phone"`
	RoleID           *uuid.UUID `pg:"roleId,type:uuid"`
	Department       *string    `pg:"department"`
	LocalePreference *string    `pg:"localePreference"`
	Status           string     `pg:"status,use_zero"`
	CreatedAt        time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt        time.Time  `pg:"updatedAt,use_zero"`

	Role *Role `pg:"fk:roleId,rel:has-one"`
}
