package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/edunews/news-site/config"
	"github.com/edunews/news-site/internal/db"
	"github.com/edunews/news-site/internal/newssite"
	"github.com/edunews/news-site/internal/rest"
	"github.com/edunews/news-site/internal/rpc"
	"github.com/edunews/news-site/internal/session"
	"github.com/edunews/news-site/internal/weather"
)

const defaultWeatherTTL = 10 * time.Minute

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, assets newssite.AssetStore, logger *slog.Logger) *App {
	database := db.New(dbConnect)
	manager := newssite.NewNewsManager(database, assets, logger)

	weatherTTL := defaultWeatherTTL
	if cfg.Weather.CacheTTLMin > 0 {
		weatherTTL = time.Duration(cfg.Weather.CacheTTLMin) * time.Minute
	}
	weatherClient := weather.NewClient(
		cfg.Weather.APIKey,
		cfg.Weather.DefaultCity,
		weather.NewCache(weatherTTL),
		logger,
	)

	sessionMaxAge := cfg.Auth.SessionMaxAgeSec
	if sessionMaxAge <= 0 {
		sessionMaxAge = 7 * 24 * 60 * 60
	}
	sessions := session.NewStore(cfg.Auth.SessionSecret, cfg.Auth.SecureCookies, sessionMaxAge)

	handler := rest.NewNewsHandler(
		manager,
		weatherClient,
		sessions,
		rest.AdminAccount{
			Login:        cfg.Auth.AdminLogin,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		},
		logger,
	)

	rpcServer := rpc.New(logger, manager)

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   handler.RegisterRoutes(rpcServer),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
