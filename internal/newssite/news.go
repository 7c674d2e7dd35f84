package newssite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edunews/news-site/internal/db"
)

// Store is the slice of the database repository the manager needs.
// *db.Repository satisfies it.
type Store interface {
	PublishedNews(ctx context.Context, limit int) ([]db.News, error)
	PublishedNewsPaginated(ctx context.Context, page, pageSize int) ([]db.News, error)
	PublishedNewsCount(ctx context.Context) (int, error)
	NewsBySlug(ctx context.Context, slug string) (*db.News, error)
	NewsByCategory(ctx context.Context, category string) ([]db.News, error)
	NewsByID(ctx context.Context, id string) (*db.News, error)
	AllNews(ctx context.Context) ([]db.News, error)
	SearchNews(ctx context.Context, query string, limit int) ([]db.News, error)
	InsertNews(ctx context.Context, news *db.News) (*db.News, error)
	UpdateNews(ctx context.Context, news *db.News) (*db.News, error)
	DeleteNews(ctx context.Context, id string) error
}

// AssetStore uploads and removes article images.
type AssetStore interface {
	Upload(ctx context.Context, data []byte, contentType, baseName, origName string) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

type Manager struct {
	db     Store
	assets AssetStore
	log    *slog.Logger
}

func NewNewsManager(store Store, assets AssetStore, log *slog.Logger) *Manager {
	return &Manager{
		db:     store,
		assets: assets,
		log:    log,
	}
}

// PublishedNews retrieves published news sorted by published_at DESC.
// A limit <= 0 means no limit.
func (u *Manager) PublishedNews(ctx context.Context, limit int) ([]News, error) {
	dbNews, err := u.db.PublishedNews(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("db get published news: %w", err)
	}

	return NewNewsList(dbNews), nil
}

// PublishedNewsPaginated retrieves one page of published news together with
// the total count and computed page count.
func (u *Manager) PublishedNewsPaginated(ctx context.Context, page, pageSize int) (*PaginatedNews, error) {
	total, err := u.db.PublishedNewsCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get published news count: %w", err)
	}

	dbNews, err := u.db.PublishedNewsPaginated(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("db get published news page: %w", err)
	}

	return &PaginatedNews{
		News:       NewNewsList(dbNews),
		Total:      total,
		Page:       page,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

// NewsBySlug retrieves a single published news item. Returns nil when the
// slug is unknown or the article is a draft.
func (u *Manager) NewsBySlug(ctx context.Context, slug string) (*News, error) {
	dbNews, err := u.db.NewsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get news by slug: %w", err)
	} else if dbNews == nil {
		return nil, nil
	}

	news := NewNews(dbNews)
	return &news, nil
}

func (u *Manager) NewsByCategory(ctx context.Context, category Category) ([]News, error) {
	dbNews, err := u.db.NewsByCategory(ctx, string(category))
	if err != nil {
		return nil, fmt.Errorf("db get news by category: %w", err)
	}

	return NewNewsList(dbNews), nil
}

// NewsByID retrieves a news item regardless of status (admin use).
func (u *Manager) NewsByID(ctx context.Context, id string) (*News, error) {
	dbNews, err := u.db.NewsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if dbNews == nil {
		return nil, nil
	}

	news := NewNews(dbNews)
	return &news, nil
}

// AllNews retrieves every article, drafts first (admin dashboard).
func (u *Manager) AllNews(ctx context.Context) ([]News, error) {
	dbNews, err := u.db.AllNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get all news: %w", err)
	}

	return NewNewsList(dbNews), nil
}

// Search matches query as a case-insensitive substring of title, content or
// short description of published news. Search is best-effort: a store error
// is logged and reported as zero results so listing pages keep working.
func (u *Manager) Search(ctx context.Context, query string, limit int) []News {
	dbNews, err := u.db.SearchNews(ctx, query, limit)
	if err != nil {
		u.log.Error("news search failed, returning empty result", "query", query, "error", err)
		return []News{}
	}

	return NewNewsList(dbNews)
}

// CreateNews uploads the image (if any) and inserts the article. The image
// goes first so the row never references an asset that does not exist.
func (u *Manager) CreateNews(ctx context.Context, input NewsInput) (*News, error) {
	slug := u.effectiveSlug(input)

	var imageURL *string
	if input.Image != nil {
		url, err := u.assets.Upload(ctx, input.Image.Data, input.Image.ContentType, slug, input.Image.Filename)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		imageURL = &url
	}

	var publishedAt *time.Time
	if input.Status == StatusPublished {
		now := time.Now()
		publishedAt = &now
	}

	row := &db.News{
		ID:               uuid.NewString(),
		Title:            input.Title,
		Slug:             slug,
		ImageURL:         imageURL,
		ShortDescription: input.ShortDescription,
		Content:          input.Content,
		SourceLink:       input.SourceLink,
		Category:         string(input.Category),
		Status:           string(input.Status),
		PublishedAt:      publishedAt,
		UpdatedAt:        time.Now(),
	}

	created, err := u.db.InsertNews(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("db insert news: %w", err)
	}

	news := NewNews(created)
	return &news, nil
}

// UpdateNews replaces the article's fields. When a new image is supplied the
// old asset is removed best-effort before the new one is uploaded.
// published_at is set on the first transition to published and never
// overwritten while non-null. Returns nil when the id is unknown.
func (u *Manager) UpdateNews(ctx context.Context, id string, input NewsInput) (*News, error) {
	existing, err := u.db.NewsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if existing == nil {
		return nil, nil
	}

	slug := u.effectiveSlug(input)

	imageURL := existing.ImageURL
	if input.Image != nil {
		if existing.ImageURL != nil {
			if err := u.assets.Delete(ctx, *existing.ImageURL); err != nil {
				u.log.Warn("failed to delete old image, continuing", "id", id, "error", err)
			}
		}

		url, err := u.assets.Upload(ctx, input.Image.Data, input.Image.ContentType, slug, input.Image.Filename)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		imageURL = &url
	}

	publishedAt := existing.PublishedAt
	if input.Status == StatusPublished && existing.PublishedAt == nil {
		now := time.Now()
		publishedAt = &now
	}

	row := &db.News{
		ID:               existing.ID,
		Title:            input.Title,
		Slug:             slug,
		ImageURL:         imageURL,
		ShortDescription: input.ShortDescription,
		Content:          input.Content,
		SourceLink:       input.SourceLink,
		Category:         string(input.Category),
		Status:           string(input.Status),
		PublishedAt:      publishedAt,
		UpdatedAt:        time.Now(),
	}

	updated, err := u.db.UpdateNews(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("db update news: %w", err)
	} else if updated == nil {
		return nil, nil
	}

	news := NewNews(updated)
	return &news, nil
}

// DeleteNews removes the article and, best-effort, its image. An image
// deletion failure never blocks the record deletion. Reports false when the
// id is unknown.
func (u *Manager) DeleteNews(ctx context.Context, id string) (bool, error) {
	existing, err := u.db.NewsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("db get news by id: %w", err)
	} else if existing == nil {
		return false, nil
	}

	if existing.ImageURL != nil {
		if err := u.assets.Delete(ctx, *existing.ImageURL); err != nil {
			u.log.Warn("failed to delete image, continuing", "id", id, "error", err)
		}
	}

	if err := u.db.DeleteNews(ctx, id); err != nil {
		return false, fmt.Errorf("db delete news: %w", err)
	}

	return true, nil
}

func (u *Manager) effectiveSlug(input NewsInput) string {
	if input.SlugEdited && strings.TrimSpace(input.Slug) != "" {
		return strings.TrimSpace(input.Slug)
	}
	return Slugify(input.Title)
}
