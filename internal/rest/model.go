package rest

import "time"

type News struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	ImageURL         *string    `json:"imageUrl"`
	ShortDescription string     `json:"shortDescription"`
	Content          string     `json:"content"`
	SourceLink       *string    `json:"sourceLink"`
	Category         string     `json:"category"`
	Status           string     `json:"status"`
	PublishedAt      *time.Time `json:"publishedAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	Layout           string     `json:"layout"`
}

type NewsSummary struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	ImageURL         *string    `json:"imageUrl"`
	ShortDescription string     `json:"shortDescription"`
	SourceLink       *string    `json:"sourceLink"`
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
