package rpc

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
		PublishedAt:      n.PublishedAt,
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
		Category:         string(n.Category),
		PublishedAt:      n.PublishedAt,
		Layout:           string(newssite.DetectLayout(n)),
	}
}

func NewNewsSummaries(list []newssite.News) []NewsSummary {
	result := make([]NewsSummary, len(list))
	for i := range list {
		result[i] = NewNewsSummary(list[i])
	}
	return result
}
