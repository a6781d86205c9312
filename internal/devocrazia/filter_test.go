package devocrazia

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniilsolovey/devocrazia/internal/catalog"
)

func TestFilter(t *testing.T) {
	articles := testArticles()

	tests := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{"no predicates", Criteria{Category: All, Tag: All}, []string{"css-grid", "docker-basics", "flexbox", "llm-inputs", "web-perf"}},
		{"empty selectors mean all", Criteria{}, []string{"css-grid", "docker-basics", "flexbox", "llm-inputs", "web-perf"}},
		{"search title case-insensitive", Criteria{Search: "DOCKER", Category: All, Tag: All}, []string{"docker-basics"}},
		{"search description", Criteria{Search: "layouts", Category: All, Tag: All}, []string{"css-grid", "flexbox"}},
		{"search tag substring", Criteria{Search: "optim", Category: All, Tag: All}, []string{"llm-inputs", "web-perf"}},
		{"category exact", Criteria{Category: "CSS", Tag: All}, []string{"css-grid", "flexbox"}},
		{"category is case-sensitive", Criteria{Category: "css", Tag: All}, []string{}},
		{"tag membership", Criteria{Category: All, Tag: "Optimization"}, []string{"llm-inputs", "web-perf"}},
		{"tag must match exactly", Criteria{Category: All, Tag: "Optim"}, []string{}},
		{"predicates are combined", Criteria{Search: "flex", Category: "CSS", Tag: "Flexbox"}, []string{"flexbox"}},
		{"combination without match", Criteria{Category: "AI", Tag: "CSS"}, []string{}},
		{"search without match", Criteria{Search: "kubernetes"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(articles, tt.criteria)
			assert.Equal(t, tt.expected, slugs(got))
		})
	}
}

func TestFilter_EmptyQueryReturnsInputInOrder(t *testing.T) {
	articles := testArticles()
	assert.Equal(t, articles, Filter(articles, Criteria{Category: All, Tag: All}))
}

func TestFilter_EmptyCatalog(t *testing.T) {
	got := Filter(nil, Criteria{Search: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_CategoriesPartitionCatalog(t *testing.T) {
	c := testCatalog(t)
	all := c.All()

	var union []catalog.Article
	seen := map[int]bool{}
	for _, category := range c.Categories() {
		part := Filter(all, Criteria{Category: category, Tag: All})
		for _, a := range part {
			assert.Equal(t, category, a.Category)
			assert.False(t, seen[a.ID], "article %d returned twice", a.ID)
			seen[a.ID] = true
		}
		union = append(union, part...)
	}

	assert.ElementsMatch(t, all, union)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	articles := testArticles()
	before := testArticles()

	_ = Filter(articles, Criteria{Search: "css", Category: "CSS", Tag: "Grid"})
	assert.Equal(t, before, articles)
}
