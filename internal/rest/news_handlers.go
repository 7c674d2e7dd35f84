package rest

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/edunews/news-site/internal/newssite"
	"github.com/edunews/news-site/internal/session"
	"github.com/edunews/news-site/internal/weather"
)

const (
	defaultPageSize    = 10
	defaultSearchLimit = 20
	maxPageSize        = 100
)

// NewsPageRequest is decoded from query params: ?page=&page_size=
type NewsPageRequest struct {
	Page     int
	PageSize int
}

// SearchRequest is decoded from query params: ?q=&limit=
type SearchRequest struct {
	Q     string
	Limit int
}

// LatestRequest is decoded from query params: ?limit=
type LatestRequest struct {
	Limit int
}

type NewsHandler struct {
	uc       *newssite.Manager
	weather  *weather.Client
	sessions *session.Store
	admin    AdminAccount
	log      *slog.Logger
}

// AdminAccount is the single admin credential pair from config.
type AdminAccount struct {
	Login        string
	PasswordHash string
}

func NewNewsHandler(
	uc *newssite.Manager,
	weatherClient *weather.Client,
	sessions *session.Store,
	admin AdminAccount,
	log *slog.Logger,
) *NewsHandler {
	return &NewsHandler{
		uc:       uc,
		weather:  weatherClient,
		sessions: sessions,
		admin:    admin,
		log:      log,
	}
}

func (h *NewsHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// News handles GET /api/v1/news
// @Summary Get paginated published news
// @Description Returns one page of published news sorted by publishedAt DESC, with total and totalPages. Requests past the last page redirect to it.
// @Tags news
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 10)"
// @Success 200 {object} rest.PaginatedNews
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news [get]
func (h *NewsHandler) News(c echo.Context) error {
	var req NewsPageRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = defaultPageSize
	}
	if req.PageSize > maxPageSize {
		req.PageSize = maxPageSize
	}

	result, err := h.uc.PublishedNewsPaginated(c.Request().Context(), req.Page, req.PageSize)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	// The facade never errors on an out-of-range page; the handler sends the
	// client back to the last valid page instead.
	if result.TotalPages > 0 && req.Page > result.TotalPages {
		return c.Redirect(http.StatusFound,
			fmt.Sprintf("%s?page=%d&page_size=%d", c.Request().URL.Path, result.TotalPages, req.PageSize))
	}

	return c.JSON(http.StatusOK, PaginatedNews{
		Data:       NewNewsSummaries(result.News),
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	})
}

// Latest handles GET /api/v1/news/latest
// @Summary Get latest published news
// @Description Returns published news sorted by publishedAt DESC, optionally capped at limit
// @Tags news
// @Produce json
// @Param limit query int false "Maximum number of items (0 = all)"
// @Success 200 {array} rest.NewsSummary
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news/latest [get]
func (h *NewsHandler) Latest(c echo.Context) error {
	var req LatestRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	news, err := h.uc.PublishedNews(c.Request().Context(), req.Limit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewNewsSummaries(news))
}

// NewsBySlug handles GET /api/v1/news/:slug
// @Summary Get published news by slug
// @Description Retrieves a single published news item with full content and the computed layout tag
// @Tags news
// @Produce json
// @Param slug path string true "News slug"
// @Success 200 {object} rest.News
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/news/{slug} [get]
func (h *NewsHandler) NewsBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid slug")
	}

	news, err := h.uc.NewsBySlug(c.Request().Context(), slug)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if news == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "news not found"})
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// NewsByCategory handles GET /api/v1/category/:category
// @Summary Get published news by category
// @Description Retrieves published news of one category sorted by publishedAt DESC
// @Tags news
// @Produce json
// @Param category path string true "Category (News, Notice or Results)"
// @Success 200 {array} rest.NewsSummary
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/category/{category} [get]
func (h *NewsHandler) NewsByCategory(c echo.Context) error {
	category, ok := newssite.ParseCategory(c.Param("category"))
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, "unknown category")
	}

	news, err := h.uc.NewsByCategory(c.Request().Context(), category)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewNewsSummaries(news))
}

// Search handles GET /api/v1/search
// @Summary Search published news
// @Description Case-insensitive substring search over title, content and short description. Degrades to an empty list on store failure.
// @Tags news
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum number of results (default: 20)"
// @Success 200 {array} rest.NewsSummary
// @Router /api/v1/search [get]
func (h *NewsHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	if req.Q == "" {
		return c.JSON(http.StatusOK, []NewsSummary{})
	}
	if req.Limit < 1 {
		req.Limit = defaultSearchLimit
	}

	news := h.uc.Search(c.Request().Context(), req.Q, req.Limit)

	return c.JSON(http.StatusOK, NewNewsSummaries(news))
}

// Weather handles GET /api/v1/weather
// @Summary Get current weather
// @Description Proxies openweathermap with a 10 minute per-location cache. Coordinates win over city.
// @Tags weather
// @Produce json
// @Param lat query string false "Latitude"
// @Param lon query string false "Longitude"
// @Param city query string false "City name"
// @Success 200 {object} weather.Report
// @Failure 500 {object} map[string]string
// @Router /api/v1/weather [get]
func (h *NewsHandler) Weather(c echo.Context) error {
	report, err := h.weather.Current(c.Request().Context(), weather.Query{
		Lat:  c.QueryParam("lat"),
		Lon:  c.QueryParam("lon"),
		City: c.QueryParam("city"),
	})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "failed to fetch weather data")
	}

	return c.JSON(http.StatusOK, report)
}
