package devocrazia

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/devocrazia/internal/catalog"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func date(s string) time.Time {
	d, err := time.Parse(catalog.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

// testArticles is a small catalog with distinct dates and titles.
func testArticles() []catalog.Article {
	return []catalog.Article{
		{ID: 1, Slug: "css-grid", Category: "CSS", Title: "Mastering CSS Grid", Description: "Two-dimensional layouts.", Date: date("2023-10-26"), ReadTime: 5, Tags: []string{"CSS", "Grid"}},
		{ID: 2, Slug: "docker-basics", Category: "DEVOPS", Title: "Docker basics", Description: "Containerize your apps.", Date: date("2023-10-24"), ReadTime: 8, Tags: []string{"Docker", "DevOps"}},
		{ID: 3, Slug: "flexbox", Category: "CSS", Title: "Flexbox in practice", Description: "One-dimensional layouts with flex.", Date: date("2024-01-15"), ReadTime: 6, Tags: []string{"CSS", "Flexbox"}},
		{ID: 4, Slug: "llm-inputs", Category: "AI", Title: "Optimizing LLM inputs", Description: "JSON versus TOON.", Date: date("2025-11-15"), ReadTime: 7, Tags: []string{"AI", "Optimization"}},
		{ID: 5, Slug: "web-perf", Category: "PERFORMANCE", Title: "apples and web performance", Description: "Code splitting and images.", Date: date("2023-10-20"), ReadTime: 7, Tags: []string{"Performance", "Optimization"}},
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.FromArticles(testArticles())
	require.NoError(t, err)
	return c
}

func slugs(list []catalog.Article) []string {
	result := make([]string, len(list))
	for i := range list {
		result[i] = list[i].Slug
	}
	return result
}

// numbered returns n articles with ids 1..n and strictly decreasing dates.
func numbered(n int) []catalog.Article {
	result := make([]catalog.Article, n)
	start := date("2024-01-01")
	for i := range result {
		result[i] = catalog.Article{
			ID:       i + 1,
			Slug:     "a" + string(rune('a'+i)),
			Title:    "Article",
			Date:     start.AddDate(0, 0, -i),
			ReadTime: 1,
		}
	}
	return result
}
