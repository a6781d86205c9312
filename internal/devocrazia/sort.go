package devocrazia

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/daniilsolovey/devocrazia/internal/catalog"
)

type SortKey string

const (
	SortRecent SortKey = "recent"
	SortOldest SortKey = "oldest"
	SortTitle  SortKey = "title"
)

// ParseSortKey maps a request value to a SortKey. Unknown values fall back
// to SortRecent.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortRecent, SortOldest, SortTitle:
		return k
	default:
		return SortRecent
	}
}

// Sorter orders article sequences. Title comparison follows the collation
// rules of its language tag.
type Sorter struct {
	tag language.Tag
}

func NewSorter(locale string) *Sorter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return &Sorter{tag: tag}
}

// Sort returns a new, stably sorted slice. Keys other than the known three
// keep the input order.
func (s *Sorter) Sort(articles []catalog.Article, key SortKey) []catalog.Article {
	result := slices.Clone(articles)
	if result == nil {
		result = []catalog.Article{}
	}

	switch key {
	case SortRecent:
		slices.SortStableFunc(result, func(a, b catalog.Article) int {
			return b.Date.Compare(a.Date)
		})
	case SortOldest:
		slices.SortStableFunc(result, func(a, b catalog.Article) int {
			return a.Date.Compare(b.Date)
		})
	case SortTitle:
		// collate.Collator keeps internal buffers and is not safe for
		// concurrent use, so each call gets its own.
		col := collate.New(s.tag)
		slices.SortStableFunc(result, func(a, b catalog.Article) int {
			return col.CompareString(a.Title, b.Title)
		})
	}

	return result
}
