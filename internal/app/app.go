package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/devocrazia/config"
	"github.com/daniilsolovey/devocrazia/internal/catalog"
	"github.com/daniilsolovey/devocrazia/internal/content"
	"github.com/daniilsolovey/devocrazia/internal/devocrazia"
	"github.com/daniilsolovey/devocrazia/internal/render"
	"github.com/daniilsolovey/devocrazia/internal/rest"
	"github.com/daniilsolovey/devocrazia/internal/rpc"
)

const rpcPath = "/v1/rpc/"

type App struct {
	Manager *devocrazia.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

func New(cfg config.Config, c *catalog.Catalog, logger *slog.Logger) *App {
	store := content.NewStore(cfg.Content.Dir)

	var src content.Source = store
	if cfg.Content.BaseURL != "" {
		src = content.NewClient(cfg.Content.BaseURL, &http.Client{Timeout: cfg.Content.Timeout})
	}

	manager := devocrazia.NewManager(
		c,
		content.NewLoader(src, logger),
		render.NewRenderer(render.NewHighlighter(cfg.Render.Style)),
		devocrazia.Options{PageSize: cfg.Listing.PageSize, Locale: cfg.Listing.Locale},
		logger,
	)

	handler := rest.NewArticlesHandler(manager, store, logger)
	e := handler.RegisterRoutes()
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	return &App{
		Manager: manager,
		Logger:  logger,
		Echo:    e,
		Config:  cfg,
	}
}

// LoadCatalog reads the configured catalog file or the built-in one.
func LoadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default()
	}

	return catalog.LoadFile(cfg.Catalog.Path)
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "service starting", "addr", addr, "contentBaseURL", a.Config.Content.BaseURL)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
