package devocrazia

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniilsolovey/devocrazia/internal/catalog"
)

func TestSorter_Sort(t *testing.T) {
	s := NewSorter("en")
	articles := testArticles()

	tests := []struct {
		key      SortKey
		expected []string
	}{
		{SortRecent, []string{"llm-inputs", "flexbox", "css-grid", "docker-basics", "web-perf"}},
		{SortOldest, []string{"web-perf", "docker-basics", "css-grid", "flexbox", "llm-inputs"}},
		// collation ignores case: "apples" sorts before "Docker"
		{SortTitle, []string{"web-perf", "docker-basics", "flexbox", "css-grid", "llm-inputs"}},
		{SortKey("unknown"), []string{"css-grid", "docker-basics", "flexbox", "llm-inputs", "web-perf"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.expected, slugs(s.Sort(articles, tt.key)))
		})
	}
}

func TestSorter_DoesNotMutateInput(t *testing.T) {
	articles := testArticles()
	before := testArticles()

	_ = NewSorter("en").Sort(articles, SortTitle)
	assert.Equal(t, before, articles)
}

func TestSorter_TitleIsIdempotent(t *testing.T) {
	s := NewSorter("en")
	once := s.Sort(testArticles(), SortTitle)
	assert.Equal(t, once, s.Sort(once, SortTitle))
}

func TestSorter_RecentIsReverseOfOldest(t *testing.T) {
	s := NewSorter("en")
	recent := s.Sort(testArticles(), SortRecent)
	oldest := s.Sort(testArticles(), SortOldest)

	slices.Reverse(oldest)
	assert.Equal(t, recent, oldest)
}

func TestSorter_IsStable(t *testing.T) {
	same := date("2023-05-05")
	articles := []catalog.Article{
		{ID: 1, Slug: "first", Title: "Same", Date: same},
		{ID: 2, Slug: "second", Title: "Same", Date: same},
		{ID: 3, Slug: "third", Title: "Same", Date: same},
	}
	s := NewSorter("en")

	for _, key := range []SortKey{SortRecent, SortOldest, SortTitle} {
		assert.Equal(t, []string{"first", "second", "third"}, slugs(s.Sort(articles, key)), key)
	}
}

func TestSorter_InvalidLocaleFallsBack(t *testing.T) {
	s := NewSorter("not a locale!")
	assert.Len(t, s.Sort(testArticles(), SortTitle), 5)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortRecent, ParseSortKey("recent"))
	assert.Equal(t, SortOldest, ParseSortKey("oldest"))
	assert.Equal(t, SortTitle, ParseSortKey("title"))
	assert.Equal(t, SortRecent, ParseSortKey(""))
	assert.Equal(t, SortRecent, ParseSortKey("TITLE"))
}
