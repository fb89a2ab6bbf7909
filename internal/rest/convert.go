package rest

import "github.com/sahelmedia/newsroom/internal/newsroom"

func NewUser(u *newsroom.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

func NewCategory(c *newsroom.Category) *Category {
	if c == nil {
		return nil
	}
	return &Category{
		ID:     c.ID,
		NameFr: c.NameFr,
		NameAr: c.NameAr,
		Slug:   c.Slug,
	}
}

func NewRegion(r newsroom.Region) Region {
	return Region{
		ID:     r.ID,
		NameFr: r.NameFr,
		NameAr: r.NameAr,
		Slug:   r.Slug,
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

func NewMediaAsset(m *newsroom.MediaAsset) *MediaAsset {
	if m == nil {
		return nil
	}
	return &MediaAsset{
		ID:         m.ID,
		AssetName:  m.AssetName,
		Type:       m.Type,
		StorageURL: m.StorageURL,
		AltTextFr:  m.AltTextFr,
		AltTextAr:  m.AltTextAr,
	}
}

func NewArticle(a newsroom.Article) Article {
	return Article{
		ID:              a.ID,
		Title:           a.Title,
		Subtitle:        a.Subtitle,
		Locale:          a.Locale,
		RTL:             a.RTL,
		Slug:            a.Slug,
		Body:            a.Body,
		Author:          NewUser(a.Author),
		Editor:          NewUser(a.Editor),
		Category:        NewCategory(a.Category),
		HeroMedia:       NewMediaAsset(a.HeroMedia),
		Featured:        a.Featured,
		ReadingTimeMin:  a.ReadingTimeMin,
		PublishDate:     a.PublishDate,
		Status:          a.Status,
		CanonicalURL:    a.CanonicalURL,
		SEOTitle:        a.SEOTitle,
		MetaDescription: a.MetaDescription,
		SourceURLs:      a.SourceURLs,
		RegionTags:      NewRegions(a.Regions),
		Tags:            NewTags(a.Tags),
		HreflangPeerID:  a.HreflangPeerID,
		Version:         a.Version,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
