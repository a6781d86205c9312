package devocrazia

import (
	"slices"
	"strings"

	"github.com/daniilsolovey/devocrazia/internal/catalog"
)

// All is the selector value that disables the category or tag predicate.
const All = "all"

// Criteria holds the active listing predicates. Empty Category or Tag is
// treated the same as All.
type Criteria struct {
	Search   string
	Category string
	Tag      string
}

func (c Criteria) categoryActive() bool {
	return c.Category != "" && c.Category != All
}

func (c Criteria) tagActive() bool {
	return c.Tag != "" && c.Tag != All
}

// Filter returns the articles matching every active predicate, in input order.
// The input slice is never modified.
func Filter(articles []catalog.Article, c Criteria) []catalog.Article {
	query := strings.ToLower(c.Search)

	result := make([]catalog.Article, 0, len(articles))
	for _, a := range articles {
		if !matchesSearch(a, query) {
			continue
		}
		if c.categoryActive() && a.Category != c.Category {
			continue
		}
		if c.tagActive() && !slices.Contains(a.Tags, c.Tag) {
			continue
		}
		result = append(result, a)
	}

	return result
}

// matchesSearch expects an already lower-cased query.
func matchesSearch(a catalog.Article, query string) bool {
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(a.Title), query) ||
		strings.Contains(strings.ToLower(a.Description), query) {
		return true
	}

	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}
