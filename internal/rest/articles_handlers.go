package rest

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/devocrazia/internal/content"
	"github.com/daniilsolovey/devocrazia/internal/devocrazia"
	"github.com/labstack/echo/v4"
)

const (
	contentTypeMarkdown = "text/markdown; charset=utf-8"
	contentTypeCSS      = "text/css; charset=utf-8"

	articlesBackPath = "/articles"
)

type ArticlesRequest struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Tag      string `query:"tag"`
	Sort     string `query:"sort"`
	Page     *int   `query:"page"`
}

type ArticlesHandler struct {
	uc    *devocrazia.Manager
	store *content.Store
	log   *slog.Logger
}

func NewArticlesHandler(uc *devocrazia.Manager, store *content.Store, log *slog.Logger) *ArticlesHandler {
	return &ArticlesHandler{
		uc:    uc,
		store: store,
		log:   log,
	}
}

func (h *ArticlesHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Articles handles GET /api/v1/articles
// @Summary List articles
// @Description Filters the catalog by search text, category and tag, sorts it and returns one page with navigation
// @Tags articles
// @Produce json
// @Param search query string false "Case-insensitive substring of title, description or tag"
// @Param category query string false "Category name or all (default: all)"
// @Param tag query string false "Tag name or all (default: all)"
// @Param sort query string false "recent, oldest or title (default: recent)"
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} rest.Listing
// @Failure 400 {object} map[string]string
// @Router /api/v1/articles [get]
func (h *ArticlesHandler) Articles(c echo.Context) error {
	var req ArticlesRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	if req.Page != nil && *req.Page < 1 {
		return h.handleError(c, errors.New("page must be positive"), http.StatusBadRequest, "invalid page")
	}

	state := devocrazia.NewListingState(req.Category)
	state.SetSearch(req.Search)
	state.SetTag(req.Tag)
	state.SetSort(devocrazia.ParseSortKey(req.Sort))
	if req.Page != nil {
		state.Page = *req.Page
	}

	return c.JSON(http.StatusOK, NewListing(h.uc.Listing(state)))
}

// ArticleBySlug handles GET /api/v1/articles/:slug
// @Summary Get article by slug
// @Description Returns catalog metadata with the rendered article body. Unknown slugs are not fetched.
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} rest.ArticleDetail
// @Failure 404 {object} rest.NotFound
// @Failure 500 {object} map[string]string
// @Router /api/v1/articles/{slug} [get]
func (h *ArticlesHandler) ArticleBySlug(c echo.Context) error {
	detail, ok := h.uc.Detail(c.Request().Context(), c.Param("slug"))
	if !ok {
		return c.JSON(http.StatusNotFound, NotFound{Error: "article not found", Back: articlesBackPath})
	}

	body, err := detail.Document.HTML()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, ArticleDetail{
		Article:  NewArticle(detail.Article),
		Meta:     NewMeta(detail.Article),
		Blocks:   Map(detail.Document.Blocks, NewBlock),
		HTML:     body,
		Fallback: detail.Fallback,
	})
}

// Categories handles GET /api/v1/categories
// @Summary Get categories
// @Description Returns categories with article counts in catalog order
// @Tags categories
// @Produce json
// @Success 200 {array} rest.CategoryCount
// @Router /api/v1/categories [get]
func (h *ArticlesHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.uc.Categories(), NewCategoryCount))
}

// Tags handles GET /api/v1/tags
// @Summary Get tags
// @Description Returns distinct tags in catalog order
// @Tags tags
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/tags [get]
func (h *ArticlesHandler) Tags(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Tags())
}

// HighlightCSS handles GET /api/v1/highlight.css
// @Summary Get code highlight stylesheet
// @Tags articles
// @Produce text/css
// @Success 200 {string} string
// @Router /api/v1/highlight.css [get]
func (h *ArticlesHandler) HighlightCSS(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.uc.WriteHighlightCSS(&buf); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Blob(http.StatusOK, contentTypeCSS, buf.Bytes())
}

// Content handles GET /content/articles/:file
// @Summary Get raw article markdown
// @Tags content
// @Produce text/markdown
// @Param file path string true "Article file name ({slug}.md)"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Router /content/articles/{file} [get]
func (h *ArticlesHandler) Content(c echo.Context) error {
	body, err := h.store.Open(c.Param("file"))
	switch {
	case errors.Is(err, content.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "content not found"})
	case err != nil:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Blob(http.StatusOK, contentTypeMarkdown, body)
}
