package rpc

import (
	"time"
)

type News struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	ImageURL         *string    `json:"imageUrl"`
	ShortDescription string     `json:"shortDescription"`
	Content          string     `json:"content"`
	SourceLink       *string    `json:"sourceLink"`
	Category         string     `json:"category"`
	PublishedAt      *time.Time `json:"publishedAt"`
	Layout           string     `json:"layout"`
}

type NewsSummary struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	ImageURL         *string    `json:"imageUrl"`
	ShortDescription string     `json:"shortDescription"`
	Category         string     `json:"category"`
	PublishedAt      *time.Time `json:"publishedAt"`
	Layout           string     `json:"layout"`
}

type PaginatedNews struct {
	Data       []NewsSummary `json:"data"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}
