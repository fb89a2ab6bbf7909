package newsroom

import "github.com/sahelmedia/newsroom/internal/db"

func NewRole(r *db.Role) Role {
	return Role{Role: *r}
}

func NewUser(u *db.User) User {
	user := User{User: *u}
	if u.Role != nil {
		role := NewRole(u.Role)
		user.Role = &role
	}

	return user
}

func NewRegion(r *db.Region) Region {
	return Region{Region: *r}
}

func NewTag(t *db.Tag) Tag {
	return Tag{Tag: *t}
}

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewMediaAsset(m *db.MediaAsset) MediaAsset {
	asset := MediaAsset{MediaAsset: *m}
	if m.UploadedBy != nil {
		user := NewUser(m.UploadedBy)
		asset.UploadedBy = &user
	}

	return asset
}

func NewArticle(a *db.Article) Article {
	article := Article{Article: *a}

	if a.Author != nil {
		author := NewUser(a.Author)
		article.Author = &author
	}

	if a.Editor != nil {
		editor := NewUser(a.Editor)
		article.Editor = &editor
	}

	if a.Category != nil {
		category := NewCategory(a.Category)
		article.Category = &category
	}

	if a.HeroMedia != nil {
		hero := NewMediaAsset(a.HeroMedia)
		article.HeroMedia = &hero
	}

	if len(a.Regions) > 0 {
		article.Regions = make([]Region, len(a.Regions))
		for i := range a.Regions {
			article.Regions[i] = NewRegion(&a.Regions[i])
		}
	}

	if len(a.Tags) > 0 {
		article.Tags = make([]Tag, len(a.Tags))
		for i := range a.Tags {
			article.Tags[i] = NewTag(&a.Tags[i])
		}
	}

	return article
}
