package content

import (
	"context"
	"log/slog"
)

// FallbackBody replaces content that could not be fetched.
const FallbackBody = "# Content not available\n\nSorry, we couldn't load the article content."

type Source interface {
	Article(ctx context.Context, slug string) (string, error)
}

type Result struct {
	Body     string
	Fallback bool
}

// Loader turns every Source failure into the fallback body. Failures are
// logged and never returned.
type Loader struct {
	src Source
	log *slog.Logger
}

func NewLoader(src Source, log *slog.Logger) *Loader {
	return &Loader{src: src, log: log}
}

func (l *Loader) Load(ctx context.Context, slug string) Result {
	body, err := l.src.Article(ctx, slug)
	if err != nil {
		if ctx.Err() != nil {
			l.log.DebugContext(ctx, "article content request canceled", "slug", slug, "error", err)
		} else {
			l.log.WarnContext(ctx, "article content unavailable, using fallback", "slug", slug, "error", err)
		}
		return Result{Body: FallbackBody, Fallback: true}
	}

	return Result{Body: body}
}
