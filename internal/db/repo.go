package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// PublishedNews retrieves published news sorted by published_at DESC.
// A limit <= 0 means no limit.
func (r *Repository) PublishedNews(ctx context.Context, limit int) ([]News, error) {
	var news []News
	query := r.db.ModelContext(ctx, &news).
		Where(`"t"."status" = ?`, StatusPublished).
		OrderExpr(`"t"."published_at" DESC NULLS LAST`)

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query published news: %w", err)
	}

	return news, nil
}

// PublishedNewsPaginated retrieves one page of published news.
// Results are sorted by published_at DESC.
func (r *Repository) PublishedNewsPaginated(ctx context.Context, page, pageSize int) ([]News, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var news []News
	err := r.db.ModelContext(ctx, &news).
		Where(`"t"."status" = ?`, StatusPublished).
		OrderExpr(`"t"."published_at" DESC NULLS LAST`).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query published news page: %w", err)
	}

	return news, nil
}

func (r *Repository) PublishedNewsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"t"."status" = ?`, StatusPublished).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get published news count: %w", err)
	}

	return count, nil
}

// NewsBySlug retrieves a single published news item by slug.
// Returns (nil, nil) when nothing matches.
func (r *Repository) NewsBySlug(ctx context.Context, slug string) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Where(`"t"."slug" = ?`, slug).
		Where(`"t"."status" = ?`, StatusPublished).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by slug: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsByCategory(ctx context.Context, category string) ([]News, error) {
	var news []News
	err := r.db.ModelContext(ctx, &news).
		Where(`"t"."category" = ?`, category).
		Where(`"t"."status" = ?`, StatusPublished).
		OrderExpr(`"t"."published_at" DESC NULLS LAST`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news by category: %w", err)
	}

	return news, nil
}

// NewsByID retrieves a news item by id with no status filter (admin use).
// Returns (nil, nil) when nothing matches.
func (r *Repository) NewsByID(ctx context.Context, id string) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

// AllNews retrieves every news item regardless of status.
// Drafts carry a null published_at, so NULLS FIRST surfaces them on top.
func (r *Repository) AllNews(ctx context.Context) ([]News, error) {
	var news []News
	err := r.db.ModelContext(ctx, &news).
		OrderExpr(`"t"."published_at" DESC NULLS FIRST`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query all news: %w", err)
	}

	return news, nil
}

// SearchNews performs a case-insensitive substring search over title,
// content and short_description of published news.
func (r *Repository) SearchNews(ctx context.Context, query string, limit int) ([]News, error) {
	pattern := "%" + query + "%"

	var news []News
	err := r.db.ModelContext(ctx, &news).
		Where(`"t"."status" = ?`, StatusPublished).
		WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern).
				WhereOr(`"t"."short_description" ILIKE ?`, pattern)
			return q, nil
		}).
		OrderExpr(`"t"."published_at" DESC NULLS LAST`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to search news: %w", err)
	}

	return news, nil
}

func (r *Repository) InsertNews(ctx context.Context, news *News) (*News, error) {
	_, err := r.db.ModelContext(ctx, news).
		Returning("*").
		Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert news: %w", err)
	}

	return news, nil
}

func (r *Repository) UpdateNews(ctx context.Context, news *News) (*News, error) {
	news.UpdatedAt = time.Now()

	result, err := r.db.ModelContext(ctx, news).
		WherePK().
		Returning("*").
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return news, nil
}

func (r *Repository) DeleteNews(ctx context.Context, id string) error {
	_, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete news: %w", err)
	}

	return nil
}
