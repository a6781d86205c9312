package devocrazia

import (
	"context"
	"io"
	"log/slog"

	"github.com/daniilsolovey/devocrazia/internal/catalog"
	"github.com/daniilsolovey/devocrazia/internal/content"
	"github.com/daniilsolovey/devocrazia/internal/render"
)

// ContentLoader yields an article body for a slug. Implementations never
// fail: unavailable content is replaced by a fallback body.
type ContentLoader interface {
	Load(ctx context.Context, slug string) content.Result
}

type Manager struct {
	catalog  *catalog.Catalog
	sorter   *Sorter
	loader   ContentLoader
	renderer *render.Renderer
	pageSize int
	log      *slog.Logger
}

type Options struct {
	PageSize int
	Locale   string
}

func NewManager(c *catalog.Catalog, loader ContentLoader, renderer *render.Renderer, opts Options, log *slog.Logger) *Manager {
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPageSize
	}

	return &Manager{
		catalog:  c,
		sorter:   NewSorter(opts.Locale),
		loader:   loader,
		renderer: renderer,
		pageSize: opts.PageSize,
		log:      log,
	}
}

func (m *Manager) PageSize() int {
	return m.pageSize
}

// Listing runs the catalog through filter, sort and pagination for state.
func (m *Manager) Listing(state ListingState) Listing {
	filtered := Filter(m.catalog.All(), state.Criteria())
	sorted := m.sorter.Sort(filtered, state.Sort)
	page := Paginate(sorted, m.pageSize, state.Page)

	return Listing{
		State:      state,
		Page:       page,
		Navigation: NewNavigation(page.TotalPages, state.Page),
		Matched:    len(sorted),
	}
}

func (m *Manager) ArticleBySlug(slug string) (catalog.Article, bool) {
	return m.catalog.BySlug(slug)
}

func (m *Manager) Categories() []catalog.CategoryCount {
	return m.catalog.CategoryCounts()
}

func (m *Manager) Tags() []string {
	return m.catalog.Tags()
}

// WriteHighlightCSS writes the stylesheet for highlighted code tokens.
func (m *Manager) WriteHighlightCSS(w io.Writer) error {
	return m.renderer.Highlighter().WriteCSS(w)
}

// Detail is an article with its rendered body.
type Detail struct {
	Article  catalog.Article
	Document render.Document
	// Fallback is set when the body could not be fetched.
	Fallback bool
}

// Detail resolves slug in the catalog and renders its content. An unknown
// slug returns false without touching the content source.
func (m *Manager) Detail(ctx context.Context, slug string) (*Detail, bool) {
	article, ok := m.catalog.BySlug(slug)
	if !ok {
		return nil, false
	}

	res := m.loader.Load(ctx, slug)

	return &Detail{
		Article:  article,
		Document: m.renderer.Render([]byte(res.Body)),
		Fallback: res.Fallback,
	}, true
}

// NewDetailView returns a view bound to this manager's catalog and content.
func (m *Manager) NewDetailView() *DetailView {
	return NewDetailView(m.catalog, m.loader, m.renderer, m.log)
}
