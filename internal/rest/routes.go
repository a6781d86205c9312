package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
)

const (
	apiV1Prefix = "/api/v1"

	articlesPath     = "/articles"
	articleBySlug    = "/articles/:slug"
	categoriesPath   = "/categories"
	tagsPath         = "/tags"
	highlightCSSPath = "/highlight.css"

	contentPath = "/content/articles/:file"
	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"

	contentTypeJSON = "application/json"
)

// RegisterRoutes registers all routes for the handler
func (h *ArticlesHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware())

	h.registerAPIRoutes(e.Group(apiV1Prefix))
	h.registerContentRoutes(e)
	h.registerHealthCheck(e)
	h.registerSwagger(e)

	return e
}

func (h *ArticlesHandler) registerAPIRoutes(g *echo.Group) {
	g.GET(articlesPath, h.Articles)
	g.GET(articleBySlug, h.ArticleBySlug)
	g.GET(categoriesPath, h.Categories)
	g.GET(tagsPath, h.Tags)
	g.GET(highlightCSSPath, h.HighlightCSS)
}

func (h *ArticlesHandler) registerContentRoutes(e *echo.Echo) {
	e.GET(contentPath, h.Content)
}

func (h *ArticlesHandler) registerHealthCheck(e *echo.Echo) {
	e.GET(healthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func (h *ArticlesHandler) registerSwagger(e *echo.Echo) {
	e.GET(swaggerPath, func(c echo.Context) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return h.handleError(c, err, http.StatusNotFound, "api docs are not registered")
		}

		return c.Blob(http.StatusOK, contentTypeJSON, []byte(doc))
	})
}

func (h *ArticlesHandler) loggingMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"path", v.URIPath,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			}
			if v.Error != nil {
				h.log.Warn("HTTP request", append(attrs, "error", v.Error)...)
				return nil
			}

			h.log.Info("HTTP request", attrs...)
			return nil
		},
	})
}
