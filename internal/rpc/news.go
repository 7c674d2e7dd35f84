package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/edunews/news-site/internal/newssite"
)

//go:generate zenrpc

// NewsService provides read-only RPC methods over published news.
type NewsService struct {
	zenrpc.Service
	manager *newssite.Manager
}

func NewNewsService(manager *newssite.Manager) *NewsService {
	return &NewsService{manager: manager}
}

// List retrieves one page of published news sorted by publishedAt DESC.
//
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=10 items per page
//zenrpc:return page of news summaries with pagination metadata
//zenrpc:500 internal server error
func (s *NewsService) List(ctx context.Context, page *int, pageSize *int) (*PaginatedNews, error) {
	result, err := s.manager.PublishedNewsPaginated(ctx, *page, *pageSize)
	if err != nil {
		return nil, err
	}

	return &PaginatedNews{
		Data:       NewNewsSummaries(result.News),
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	}, nil
}

// BySlug retrieves a single published news item with full content and the
// computed layout tag.
//
//zenrpc:slug news slug
//zenrpc:return news with full content
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s *NewsService) BySlug(ctx context.Context, slug string) (*News, error) {
	news, err := s.manager.NewsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if news == nil {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	result := NewNews(*news)
	return &result, nil
}

// ByCategory retrieves published news of one category sorted by publishedAt DESC.
//
//zenrpc:category one of News, Notice, Results
//zenrpc:return list of news summaries
//zenrpc:400 unknown category
//zenrpc:500 internal server error
func (s *NewsService) ByCategory(ctx context.Context, category string) ([]NewsSummary, error) {
	parsed, ok := newssite.ParseCategory(category)
	if !ok {
		return nil, zenrpc.NewStringError(400, "unknown category")
	}

	news, err := s.manager.NewsByCategory(ctx, parsed)
	if err != nil {
		return nil, err
	}

	return NewNewsSummaries(news), nil
}

// Search matches the query as a case-insensitive substring of title, content
// or short description. A store failure yields an empty list, never an error.
//
//zenrpc:query search query
//zenrpc:limit=20 maximum number of results
//zenrpc:return list of news summaries
func (s *NewsService) Search(ctx context.Context, query string, limit *int) ([]NewsSummary, error) {
	if query == "" {
		return []NewsSummary{}, nil
	}

	return NewNewsSummaries(s.manager.Search(ctx, query, *limit)), nil
}
