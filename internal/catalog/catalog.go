package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed articles.toml
var defaultCatalog string

var (
	ErrDuplicateID   = errors.New("duplicate article id")
	ErrDuplicateSlug = errors.New("duplicate article slug")
	ErrInvalidSlug   = errors.New("invalid article slug")
	ErrInvalidDate   = errors.New("invalid article date")
	ErrInvalidRead   = errors.New("read time must be positive")
)

// Catalog is the immutable set of articles. It is safe for concurrent use:
// nothing mutates it after Load, and every accessor returns copies.
type Catalog struct {
	articles []Article
	bySlug   map[string]int
}

// Default returns the catalog embedded into the binary.
func Default() (*Catalog, error) {
	return Load(strings.NewReader(defaultCatalog))
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a TOML catalog and validates ids, slugs, dates and read times.
func Load(r io.Reader) (*Catalog, error) {
	var f file
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return newCatalog(f.Articles)
}

func newCatalog(list []fileArticle) (*Catalog, error) {
	c := &Catalog{
		articles: make([]Article, 0, len(list)),
		bySlug:   make(map[string]int, len(list)),
	}
	ids := make(map[int]struct{}, len(list))

	for i, fa := range list {
		a, err := newArticle(fa)
		if err != nil {
			return nil, fmt.Errorf("article #%d: %w", i, err)
		}

		if _, ok := ids[a.ID]; ok {
			return nil, fmt.Errorf("article #%d: %w: %d", i, ErrDuplicateID, a.ID)
		}
		if _, ok := c.bySlug[a.Slug]; ok {
			return nil, fmt.Errorf("article #%d: %w: %q", i, ErrDuplicateSlug, a.Slug)
		}

		ids[a.ID] = struct{}{}
		c.bySlug[a.Slug] = len(c.articles)
		c.articles = append(c.articles, a)
	}

	return c, nil
}

// FromArticles builds a catalog from already parsed records. The same
// validation as Load applies.
func FromArticles(list []Article) (*Catalog, error) {
	raw := make([]fileArticle, len(list))
	for i, a := range list {
		raw[i] = fileArticle{
			ID:            a.ID,
			Slug:          a.Slug,
			Category:      a.Category,
			CategoryColor: a.CategoryColor,
			Title:         a.Title,
			Description:   a.Description,
			AuthorName:    a.AuthorName,
			Date:          a.ISODate(),
			ReadTime:      a.ReadTime,
			Image:         a.Image,
			HeroImage:     a.HeroImage,
			Tags:          a.Tags,
		}
	}

	return newCatalog(raw)
}

func newArticle(fa fileArticle) (Article, error) {
	if fa.Slug == "" || strings.ContainsAny(fa.Slug, "/?#% ") {
		return Article{}, fmt.Errorf("%w: %q", ErrInvalidSlug, fa.Slug)
	}

	date, err := time.Parse(DateLayout, fa.Date)
	if err != nil {
		return Article{}, fmt.Errorf("%w: %q: %w", ErrInvalidDate, fa.Date, err)
	}

	if fa.ReadTime <= 0 {
		return Article{}, fmt.Errorf("%w: %d", ErrInvalidRead, fa.ReadTime)
	}

	a := Article{
		ID:            fa.ID,
		Slug:          fa.Slug,
		Category:      fa.Category,
		CategoryColor: fa.CategoryColor,
		Title:         fa.Title,
		Description:   fa.Description,
		AuthorName:    fa.AuthorName,
		Date:          date,
		ReadTime:      fa.ReadTime,
		Image:         fa.Image,
		HeroImage:     fa.HeroImage,
		Tags:          fa.Tags,
	}

	return a.clone(), nil
}

func (c *Catalog) Len() int {
	return len(c.articles)
}

// All returns the articles in catalog order.
func (c *Catalog) All() []Article {
	result := make([]Article, len(c.articles))
	for i := range c.articles {
		result[i] = c.articles[i].clone()
	}

	return result
}

func (c *Catalog) BySlug(slug string) (Article, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Article{}, false
	}

	return c.articles[i].clone(), true
}

// Categories returns distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	counts := c.CategoryCounts()
	result := make([]string, len(counts))
	for i := range counts {
		result[i] = counts[i].Name
	}

	return result
}

// CategoryCounts groups the catalog by category, keeping first-appearance order.
func (c *Catalog) CategoryCounts() []CategoryCount {
	index := make(map[string]int)
	var result []CategoryCount
	for _, a := range c.articles {
		i, ok := index[a.Category]
		if !ok {
			index[a.Category] = len(result)
			result = append(result, CategoryCount{Name: a.Category, Count: 1})
			continue
		}
		result[i].Count++
	}

	return result
}

// Tags returns distinct tags in order of first appearance.
func (c *Catalog) Tags() []string {
	seen := make(map[string]struct{})
	var result []string
	for _, a := range c.articles {
		for _, tag := range a.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			result = append(result, tag)
		}
	}

	return result
}
