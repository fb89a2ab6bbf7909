package rest

import "github.com/sahelmedia/newsroom/internal/newsroom"

//go:generate colgen -imports=github.com/sahelmedia/newsroom/internal/newsroom
//colgen:Article,Category,Tag,Region
//colgen:Article:Map(newsroom)
//colgen:Category:Map(newsroom)
//colgen:Tag:Map(newsroom)
//colgen:Region:Map(newsroom)

type Articles []Article

func NewArticles(list newsroom.Articles) Articles {
	result := make(Articles, len(list))
	for i := range list {
		result[i] = NewArticle(list[i])
	}
	return result
}

type Categories []Category

func NewCategories(list newsroom.Categories) Categories {
	result := make(Categories, len(list))
	for i := range list {
		result[i] = *NewCategory(&list[i])
	}
	return result
}

type Tags []Tag

func NewTags(list []newsroom.Tag) Tags {
	result := make(Tags, len(list))
	for i := range list {
		result[i] = NewTag(list[i])
	}
	return result
}

type Regions []Region

func NewRegions(list []newsroom.Region) Regions {
	result := make(Regions, len(list))
	for i := range list {
		result[i] = NewRegion(list[i])
	}
	return result
}
