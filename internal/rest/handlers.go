package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/urlstruct"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sahelmedia/newsroom/internal/db"
	"github.com/sahelmedia/newsroom/internal/newsroom"
)

type Handler struct {
	uc  *newsroom.Manager
	log *slog.Logger
}

func NewHandler(uc *newsroom.Manager, log *slog.Logger) *Handler {
	return &Handler{
		uc:  uc,
		log: log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Articles handles GET /articles/
// @Summary List published articles
// @Description Retrieves published articles ordered by publishDate DESC (null dates last), with nested author, editor, category, hero media, region tags and tags
// @Tags articles
// @Produce json
// @Param locale query string false "Filter by locale (ar or fr)"
// @Param category query string false "Filter by category slug"
// @Success 200 {array} rest.Article
// @Failure 400,500 {object} map[string]string
// @Router /articles/ [get]
func (h *Handler) Articles(c echo.Context) error {
	var filter db.ArticleFilter
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &filter); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	articles, err := h.uc.PublishedArticles(c.Request().Context(), &filter)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewArticles(articles))
}

// ArticleByID handles GET /articles/:id/
// @Summary Get a published article
// @Description Retrieves a single published article by id; unpublished articles are indistinguishable from missing ones
// @Tags articles
// @Produce json
// @Param id path string true "Article ID (UUID)"
// @Success 200 {object} rest.Article
// @Failure 400,404,500 {object} map[string]string
// @Router /articles/{id}/ [get]
func (h *Handler) ArticleByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.uc.PublishedArticleByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// Categories handles GET /categories/
// @Summary List categories
// @Description Retrieves all categories ordered by weight, then French name
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /categories/ [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// CategoryBySlug handles GET /categories/:slug/
// @Summary Get a category by slug
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} rest.Category
// @Failure 404,500 {object} map[string]string
// @Router /categories/{slug}/ [get]
func (h *Handler) CategoryBySlug(c echo.Context) error {
	category, err := h.uc.CategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if category == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "category not found"})
	}

	return c.JSON(http.StatusOK, NewCategory(category))
}

// Tags handles GET /tags/
// @Summary List tags
// @Description Retrieves all tags ordered by French name
// @Tags taxonomy
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} map[string]string
// @Router /tags/ [get]
func (h *Handler) Tags(c echo.Context) error {
	tags, err := h.uc.Tags(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewTags(tags))
}

// Regions handles GET /regions/
// @Summary List regions
// @Description Retrieves all regions ordered by French name
// @Tags taxonomy
// @Produce json
// @Success 200 {array} rest.Region
// @Failure 500 {object} map[string]string
// @Router /regions/ [get]
func (h *Handler) Regions(c echo.Context) error {
	regions, err := h.uc.Regions(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewRegions(regions))
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterRoutes builds the echo instance with the public read surface.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(h.requestLogger)

	e.GET("/health", h.Health)
	e.GET("/articles/", h.Articles)
	e.GET("/articles/:id/", h.ArticleByID)
	e.GET("/categories/", h.Categories)
	e.GET("/categories/:slug/", h.CategoryBySlug)
	e.GET("/tags/", h.Tags)
	e.GET("/regions/", h.Regions)

	return e
}

func (h *Handler) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

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
