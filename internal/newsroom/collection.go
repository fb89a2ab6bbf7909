package newsroom

import "github.com/sahelmedia/newsroom/internal/db"

//go:generate colgen -imports=github.com/sahelmedia/newsroom/internal/db
//colgen:Article,Category,Tag,Region
//colgen:Article:Map(db)
//colgen:Category:Map(db)
//colgen:Tag:Map(db)
//colgen:Region:Map(db)

type Articles []Article

func NewArticles(list []db.Article) Articles {
	result := make(Articles, len(list))
	for i := range list {
		result[i] = NewArticle(&list[i])
	}
	return result
}

type Categories []Category

func NewCategories(list []db.Category) Categories {
	result := make(Categories, len(list))
	for i := range list {
		result[i] = NewCategory(&list[i])
	}
	return result
}

type Tags []Tag

func NewTags(list []db.Tag) Tags {
	result := make(Tags, len(list))
	for i := range list {
		result[i] = NewTag(&list[i])
	}
	return result
}

type Regions []Region

func NewRegions(list []db.Region) Regions {
	result := make(Regions, len(list))
	for i := range list {
		result[i] = NewRegion(&list[i])
	}
	return result
}
