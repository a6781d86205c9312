package devocrazia

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/daniilsolovey/devocrazia/internal/catalog"
	"github.com/daniilsolovey/devocrazia/internal/render"
)

var (
	ErrViewClosed  = errors.New("detail view closed")
	ErrNoCodeBlock = errors.New("no such code block")
)

type DetailStatus string

const (
	DetailIdle     DetailStatus = "idle"
	DetailLoading  DetailStatus = "loading"
	DetailReady    DetailStatus = "ready"
	DetailNotFound DetailStatus = "not_found"
)

type DetailSnapshot struct {
	Status   DetailStatus
	Slug     string
	Article  catalog.Article
	Document render.Document
	Fallback bool
}

type DetailOption func(*DetailView)

// WithScheduler sets the scheduler used by the copy buttons.
func WithScheduler(s render.Scheduler) DetailOption {
	return func(v *DetailView) { v.sched = s }
}

// WithClipboard sets the clipboard writer used by the copy buttons.
func WithClipboard(fn render.ClipboardFunc) DetailOption {
	return func(v *DetailView) { v.clipboard = fn }
}

// DetailView holds the state of the article page for one active slug at a
// time. Each Open takes a new request token; a fetch result is applied only
// while its token is still the latest, so the last requested slug wins no
// matter in which order fetches complete.
type DetailView struct {
	catalog   *catalog.Catalog
	loader    ContentLoader
	renderer  *render.Renderer
	log       *slog.Logger
	sched     render.Scheduler
	clipboard render.ClipboardFunc

	mu      sync.Mutex
	token   uint64
	cancel  context.CancelFunc
	snap    DetailSnapshot
	buttons []*render.CopyButton
	closed  bool
}

func NewDetailView(c *catalog.Catalog, loader ContentLoader, renderer *render.Renderer, log *slog.Logger, opts ...DetailOption) *DetailView {
	v := &DetailView{
		catalog:  c,
		loader:   loader,
		renderer: renderer,
		log:      log,
		snap:     DetailSnapshot{Status: DetailIdle},
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Open activates slug. The returned channel is closed once this activation
// has settled: content applied, discarded as stale, or not found. Unknown
// slugs settle immediately without a fetch.
func (v *DetailView) Open(ctx context.Context, slug string) <-chan struct{} {
	done := make(chan struct{})

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		close(done)
		return done
	}

	v.token++
	token := v.token
	v.releaseLocked()

	article, ok := v.catalog.BySlug(slug)
	if !ok {
		v.snap = DetailSnapshot{Status: DetailNotFound, Slug: slug}
		close(done)
		return done
	}

	v.snap = DetailSnapshot{Status: DetailLoading, Slug: slug, Article: article}

	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	go v.fetch(fetchCtx, token, slug, done)

	return done
}

func (v *DetailView) fetch(ctx context.Context, token uint64, slug string, done chan<- struct{}) {
	defer close(done)

	res := v.loader.Load(ctx, slug)
	doc := v.renderer.Render([]byte(res.Body))

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || token != v.token {
		v.log.DebugContext(ctx, "discarding stale article content", "slug", slug)
		return
	}

	v.cancel()
	v.cancel = nil

	v.snap.Status = DetailReady
	v.snap.Document = doc
	v.snap.Fallback = res.Fallback

	blocks := doc.CodeBlocks()
	v.buttons = make([]*render.CopyButton, len(blocks))
	for i, cb := range blocks {
		v.buttons[i] = render.NewCopyButton(cb.Text, v.sched, v.clipboard)
	}
}

func (v *DetailView) Snapshot() DetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.snap
}

// Copy copies the i-th code block of the current document.
func (v *DetailView) Copy(i int) error {
	b, err := v.button(i)
	if err != nil {
		return err
	}

	if err := b.Copy(); err != nil {
		v.log.Warn("copy code block failed", "slug", v.Snapshot().Slug, "block", i, "error", err)
		return err
	}

	return nil
}

func (v *DetailView) CopyState(i int) (render.CopyState, error) {
	b, err := v.button(i)
	if err != nil {
		return render.CopyIdle, err
	}

	return b.State(), nil
}

func (v *DetailView) button(i int) (*render.CopyButton, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil, ErrViewClosed
	}
	if i < 0 || i >= len(v.buttons) {
		return nil, fmt.Errorf("%w: %d", ErrNoCodeBlock, i)
	}

	return v.buttons[i], nil
}

// Close tears the view down: the pending fetch is canceled and every copy
// button stops its reset timer.
func (v *DetailView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.closed = true
	v.token++
	v.releaseLocked()
}

func (v *DetailView) releaseLocked() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	for _, b := range v.buttons {
		b.Close()
	}
	v.buttons = nil
}
