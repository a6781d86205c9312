package catalog

import (
	"slices"
	"time"
)

// DateLayout is the day-precision layout of Article.Date in catalog files.
const DateLayout = "2006-01-02"

type Article struct {
	ID            int
	Slug          string
	Category      string
	CategoryColor string
	Title         string
	Description   string
	AuthorName    string
	Date          time.Time
	ReadTime      int
	Image         string
	HeroImage     string
	Tags          []string
}

// HasHeroImage reports whether a dedicated detail-page image is set.
func (a Article) HasHeroImage() bool {
	return a.HeroImage != ""
}

// ShortDate formats Date as "Oct 26, 2023".
func (a Article) ShortDate() string {
	return a.Date.Format("Jan 02, 2006")
}

// LongDate formats Date as "October 26, 2023".
func (a Article) LongDate() string {
	return a.Date.Format("January 2, 2006")
}

// ISODate formats Date as it is stored in the catalog.
func (a Article) ISODate() string {
	return a.Date.Format(DateLayout)
}

func (a Article) clone() Article {
	a.Tags = slices.Clone(a.Tags)
	return a
}

type CategoryCount struct {
	Name  string
	Count int
}

// fileArticle is the TOML representation of an [[article]] table.
type fileArticle struct {
	ID            int      `toml:"id"`
	Slug          string   `toml:"slug"`
	Category      string   `toml:"category"`
	CategoryColor string   `toml:"categoryColor"`
	Title         string   `toml:"title"`
	Description   string   `toml:"description"`
	AuthorName    string   `toml:"authorName"`
	Date          string   `toml:"date"`
	ReadTime      int      `toml:"readTime"`
	Image         string   `toml:"image"`
	HeroImage     string   `toml:"heroImage"`
	Tags          []string `toml:"tags"`
}

type file struct {
	Articles []fileArticle `toml:"article"`
}
