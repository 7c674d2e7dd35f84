package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	apiV1Prefix = "/api/v1"

	frontendDir = "./frontend"
)

// RegisterRoutes builds the echo instance with all public, admin and rpc
// routes. The rpc handler may be nil when the JSON-RPC surface is disabled.
func (h *NewsHandler) RegisterRoutes(rpc http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(h.requestLogger)
	e.Use(echomw.Recover())

	api := e.Group(apiV1Prefix)

	api.GET("/news", h.News)
	api.GET("/news/latest", h.Latest)
	api.GET("/news/:slug", h.NewsBySlug)
	api.GET("/category/:category", h.NewsByCategory)
	api.GET("/search", h.Search)
	api.GET("/weather", h.Weather)

	api.POST("/admin/login", h.Login)
	api.POST("/admin/logout", h.Logout)

	admin := api.Group("/admin", h.requireAdmin)
	admin.GET("/news", h.AllNews)
	admin.GET("/news/:id", h.AdminNewsByID)
	admin.POST("/news", h.CreateNews)
	admin.PUT("/news/:id", h.UpdateNews)
	admin.DELETE("/news/:id", h.DeleteNews)

	if rpc != nil {
		e.Any("/rpc", echo.WrapHandler(rpc))
	}

	e.GET("/health", h.handleHealth)
	e.Static("/", frontendDir)

	return e
}

func (h *NewsHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requireAdmin gates mutating admin routes on the session cookie. Handlers
// behind it never re-check authentication themselves.
func (h *NewsHandler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.sessions.IsAdmin(c.Request()) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		}
		return next(c)
	}
}

func (h *NewsHandler) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return err
	}
}
