package config

import (
	"github.com/go-pg/pg/v10"

	"github.com/edunews/news-site/internal/storage"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Auth struct {
		AdminLogin        string
		AdminPasswordHash string
		SessionSecret     string
		SecureCookies     bool
		SessionMaxAgeSec  int
	}
	S3      storage.Options
	Weather struct {
		APIKey      string
		DefaultCity string
		CacheTTLMin int
	}
}
