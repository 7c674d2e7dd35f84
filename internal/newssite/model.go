package newssite

import (
	"time"
)

// Category is the closed set of article categories.
type Category string

const (
	CategoryNews    Category = "News"
	CategoryNotice  Category = "Notice"
	CategoryResults Category = "Results"
)

// ParseCategory reports whether s names a known category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryNews, CategoryNotice, CategoryResults:
		return Category(s), true
	}
	return "", false
}

// Status is the closed set of publication states.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// ParseStatus reports whether s names a known status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusDraft, StatusPublished:
		return Status(s), true
	}
	return "", false
}

// Layout selects which of the three presentation templates renders an article.
type Layout string

const (
	LayoutNews     Layout = "news"
	LayoutNotice   Layout = "notice"
	LayoutDocument Layout = "document"
)

type News struct {
	ID               string
	Title            string
	Slug             string
	ImageURL         *string
	ShortDescription string
	Content          string
	SourceLink       *string
	Category         Category
	Status           Status
	PublishedAt      *time.Time
	UpdatedAt        time.Time
}

// PaginatedNews is one page of published news plus pagination metadata.
type PaginatedNews struct {
	News       []News
	Total      int
	Page       int
	TotalPages int
}

// ImageUpload carries an uploaded image file from the admin form.
type ImageUpload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// NewsInput is the admin form payload for creating or updating an article.
// SlugEdited reports that the admin edited the slug by hand: when false the
// slug is regenerated from the title, when true the submitted slug is kept.
type NewsInput struct {
	Title            string
	Slug             string
	SlugEdited       bool
	ShortDescription string
	Content          string
	SourceLink       *string
	Category         Category
	Status           Status
	Image            *ImageUpload
}
