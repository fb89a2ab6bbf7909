package rpc

import (
	"github.com/google/uuid"

	"github.com/sahelmedia/newsroom/internal/newsroom"
)

func NewArticle(a newsroom.Article) Article {
	regionIDs := make([]uuid.UUID, len(a.Regions))
	for i := range a.Regions {
		regionIDs[i] = a.Regions[i].ID
	}
	tagIDs := make([]uuid.UUID, len(a.Tags))
	for i := range a.Tags {
		tagIDs[i] = a.Tags[i].ID
	}

	return Article{
		ID:             a.ID,
		Title:          a.Title,
		Subtitle:       a.Subtitle,
		Locale:         a.Locale,
		RTL:            a.RTL,
		Slug:           a.Slug,
		Body:           a.Body,
		AuthorID:       a.AuthorID,
		EditorID:       a.EditorID,
		CategoryID:     a.CategoryID,
		HeroMediaID:    a.HeroMediaID,
		Featured:       a.Featured,
		ReadingTimeMin: a.ReadingTimeMin,
		PublishDate:    a.PublishDate,
		Status:         a.Status,
		HreflangPeerID: a.HreflangPeerID,
		RegionIDs:      regionIDs,
		TagIDs:         tagIDs,
		Version:        a.Version,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func NewCategory(c newsroom.Category) Category {
	return Category{
		ID:       c.ID,
		NameFr:   c.NameFr,
		NameAr:   c.NameAr,
		Slug:     c.Slug,
		ParentID: c.ParentID,
		Weight:   c.Weight,
	}
}

func NewTag(t newsroom.Tag) Tag {
	return Tag{
		ID:     t.ID,
		NameFr: t.NameFr,
		NameAr: t.NameAr,
		Slug:   t.Slug,
	}
}

func NewRegion(r newsroom.Region) Region {
	return Region{
		ID:         r.ID,
		NameFr:     r.NameFr,
		NameAr:     r.NameAr,
		Slug:       r.Slug,
		RegionType: r.RegionType,
	}
}

func NewMediaAsset(m newsroom.MediaAsset) MediaAsset {
	return MediaAsset{
		ID:         m.ID,
		AssetName:  m.AssetName,
		Type:       m.Type,
		StorageURL: m.StorageURL,
		License:    m.License,
	}
}

func NewUser(u newsroom.User) User {
	user := User{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Status: u.Status,
	}
	if u.Role != nil {
		user.Role = &u.Role.Name
	}

	return user
}
