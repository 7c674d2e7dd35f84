package rest

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/edunews/news-site/internal/newssite"
)

const maxImageBytes = 10 << 20

type LoginRequest struct {
	Login    string `json:"login" form:"login"`
	Password string `json:"password" form:"password"`
}

// Login handles POST /api/v1/admin/login
// @Summary Admin login
// @Description Verifies the single admin credential pair and sets the session cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body rest.LoginRequest true "Admin credentials"
// @Success 200 {object} map[string]string
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/admin/login [post]
func (h *NewsHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request")
	}

	if req.Login != h.admin.Login ||
		bcrypt.CompareHashAndPassword([]byte(h.admin.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid login or password"})
	}

	if err := h.sessions.SetAdmin(c.Response(), c.Request()); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Logout handles POST /api/v1/admin/logout
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/admin/logout [post]
func (h *NewsHandler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c.Response(), c.Request()); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "failed to clear session")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AllNews handles GET /api/v1/admin/news
// @Summary List all news for the dashboard
// @Description Returns every article regardless of status, drafts first
// @Tags admin
// @Produce json
// @Success 200 {array} rest.News
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/news [get]
func (h *NewsHandler) AllNews(c echo.Context) error {
	news, err := h.uc.AllNews(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewNewsList(news))
}

// AdminNewsByID handles GET /api/v1/admin/news/:id
// @Summary Get news by id for the edit form
// @Description Retrieves a single article by id with no status filter
// @Tags admin
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} rest.News
// @Failure 401,404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [get]
func (h *NewsHandler) AdminNewsByID(c echo.Context) error {
	news, err := h.uc.NewsByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if news == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "news not found"})
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// CreateNews handles POST /api/v1/admin/news
// @Summary Create an article
// @Description Multipart form create with optional image. The image is uploaded before the record is written.
// @Tags admin
// @Accept mpfd
// @Produce json
// @Success 201 {object} rest.News
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/admin/news [post]
func (h *NewsHandler) CreateNews(c echo.Context) error {
	input, err := h.newsInputFromForm(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	news, err := h.uc.CreateNews(c.Request().Context(), *input)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "failed to create news")
	}

	return c.JSON(http.StatusCreated, NewNews(*news))
}

// UpdateNews handles PUT /api/v1/admin/news/:id
// @Summary Update an article
// @Description Multipart form update. A new image replaces the old one; the old asset is deleted best-effort.
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} rest.News
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [put]
func (h *NewsHandler) UpdateNews(c echo.Context) error {
	input, err := h.newsInputFromForm(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	news, err := h.uc.UpdateNews(c.Request().Context(), c.Param("id"), *input)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "failed to update news")
	}
	if news == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "news not found"})
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// DeleteNews handles DELETE /api/v1/admin/news/:id
// @Summary Delete an article
// @Description Removes the article; its image is deleted best-effort and never blocks the record deletion
// @Tags admin
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} map[string]bool
// @Failure 401,404,500 {object} map[string]string
// @Router /api/v1/admin/news/{id} [delete]
func (h *NewsHandler) DeleteNews(c echo.Context) error {
	deleted, err := h.uc.DeleteNews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "failed to delete news")
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "news not found"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// newsInputFromForm validates the multipart admin form. Empty required
// fields and malformed values are rejected here, not in the domain layer.
func (h *NewsHandler) newsInputFromForm(c echo.Context) (*newssite.NewsInput, error) {
	input := newssite.NewsInput{
		Title:            strings.TrimSpace(c.FormValue("title")),
		Slug:             strings.TrimSpace(c.FormValue("slug")),
		SlugEdited:       c.FormValue("slug_edited") == "true",
		ShortDescription: strings.TrimSpace(c.FormValue("short_description")),
		Content:          c.FormValue("content"),
	}

	if input.Title == "" {
		return nil, errors.New("title is required")
	}
	if input.ShortDescription == "" {
		return nil, errors.New("short_description is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.New("content is required")
	}

	category, ok := newssite.ParseCategory(c.FormValue("category"))
	if !ok {
		return nil, errors.New("unknown category")
	}
	input.Category = category

	status, ok := newssite.ParseStatus(c.FormValue("status"))
	if !ok {
		return nil, errors.New("unknown status")
	}
	input.Status = status

	if link := strings.TrimSpace(c.FormValue("source_link")); link != "" {
		parsed, err := url.Parse(link)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return nil, errors.New("source_link must be a valid absolute URL")
		}
		input.SourceLink = &link
	}

	image, err := h.imageFromForm(c)
	if err != nil {
		return nil, err
	}
	input.Image = image

	return &input, nil
}

func (h *NewsHandler) imageFromForm(c echo.Context) (*newssite.ImageUpload, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// Missing file means no image was submitted.
		return nil, nil
	}
	if fh.Size == 0 {
		return nil, nil
	}
	if fh.Size > maxImageBytes {
		return nil, errors.New("image is too large")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, errors.New("failed to read image")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.New("failed to read image")
	}

	return &newssite.ImageUpload{
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
		Filename:    fh.Filename,
	}, nil
}
