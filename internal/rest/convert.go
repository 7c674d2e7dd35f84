package rest

import "github.com/edunews/news-site/internal/newssite"

func NewNews(n newssite.News) News {
	return News{
		ID:               n.ID,
		Title:            n.Title,
		Slug:             n.Slug,
		ImageURL:         n.ImageURL,
		ShortDescription: n.ShortDescription,
		Content:          n.Content,
		SourceLink:       n.SourceLink,
		Category:         string(n.Category),
		Status:           string(n.Status),
		PublishedAt:      n.PublishedAt,
		UpdatedAt:        n.UpdatedAt,
		Layout:           string(newssite.DetectLayout(n)),
	}
}

func NewNewsSummary(n newssite.News) NewsSummary {
	return NewsSummary{
		ID:               n.ID,
		Title:            n.Title,
		Slug:             n.Slug,
		ImageURL:         n.ImageURL,
		ShortDescription: n.ShortDescription,
		SourceLink:       n.SourceLink,
		Category:         string(n.Category),
		PublishedAt:      n.PublishedAt,
		Layout:           string(newssite.DetectLayout(n)),
	}
}

func NewNewsList(list []newssite.News) []News {
	result := make([]News, len(list))
	for i := range list {
		result[i] = NewNews(list[i])
	}
	return result
}

func NewNewsSummaries(list []newssite.News) []NewsSummary {
	result := make([]NewsSummary, len(list))
	for i := range list {
		result[i] = NewNewsSummary(list[i])
	}
	return result
}
