package newssite

import (
	"github.com/edunews/news-site/internal/db"
)

func NewNews(n *db.News) News {
	return News{
		ID:               n.ID,
		Title:            n.Title,
		Slug:             n.Slug,
		ImageURL:         n.ImageURL,
		ShortDescription: n.ShortDescription,
		Content:          n.Content,
		SourceLink:       n.SourceLink,
		Category:         Category(n.Category),
		Status:           Status(n.Status),
		PublishedAt:      n.PublishedAt,
		UpdatedAt:        n.UpdatedAt,
	}
}

func NewNewsList(list []db.News) []News {
	result := make([]News, len(list))
	for i := range list {
		result[i] = NewNews(&list[i])
	}
	return result
}
