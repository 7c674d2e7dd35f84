// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	News struct {
		ID, Title, Slug, ImageURL, ShortDescription, Content, SourceLink,
		Category, Status, PublishedAt, UpdatedAt string
	}
}{
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	News: struct {
		ID, Title, Slug, ImageURL, ShortDescription, Content, SourceLink,
		Category, Status, PublishedAt, UpdatedAt string
	}{
		ID:               "id",
		Title:            "title",
		Slug:             "slug",
		ImageURL:         "image_url",
		ShortDescription: "short_description",
		Content:          "content",
		SourceLink:       "source_link",
		Category:         "category",
		Status:           "status",
		PublishedAt:      "published_at",
		UpdatedAt:        "updated_at",
	},
}

var Tables = struct {
	GooseDbVersion struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
}{
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID               string     `pg:"id,pk"`
	Title            string     `pg:"title,use_zero"`
	Slug             string     `pg:"slug,use_zero"`
	ImageURL         *string    `pg:"image_url"`
	ShortDescription string     `pg:"short_description,use_zero"`
	Content          string     `pg:"content,use_zero"`
	SourceLink       *string    `pg:"source_link"`
	Category         string     `pg:"category,use_zero"`
	Status           string     `pg:"status,use_zero"`
	PublishedAt      *time.Time `pg:"published_at"`
	UpdatedAt        time.Time  `pg:"updated_at,use_zero"`
}
