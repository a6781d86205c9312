package rpc

import "github.com/daniilsolovey/devocrazia/internal/devocrazia"

type ListFilter struct {
	//search case-insensitive substring of title, description or tag
	Search *string `json:"search,omitempty"`
	//category=all category name
	Category *string `json:"category,omitempty"`
	//tag=all tag name
	Tag *string `json:"tag,omitempty"`
	//sort=recent recent, oldest or title
	Sort *string `json:"sort,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
}

func (f ListFilter) ToState() devocrazia.ListingState {
	s := devocrazia.NewListingState(deref(f.Category))
	s.SetSearch(deref(f.Search))
	s.SetTag(deref(f.Tag))
	s.SetSort(devocrazia.ParseSortKey(deref(f.Sort)))
	if f.Page != nil {
		s.Page = *f.Page
	}

	return s
}

type ArticleSummary struct {
	ID            int      `json:"id"`
	Slug          string   `json:"slug"`
	Category      string   `json:"category"`
	CategoryColor string   `json:"categoryColor"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	AuthorName    string   `json:"authorName"`
	Date          string   `json:"date"`
	ReadTime      int      `json:"readTime"`
	Image         string   `json:"image"`
	Tags          []string `json:"tags"`
}

type NavItem struct {
	// page or ellipsis
	Kind   string `json:"kind"`
	Number int    `json:"number,omitempty"`
	Active bool   `json:"active,omitempty"`
}

type NavControl struct {
	Target   int  `json:"target"`
	Disabled bool `json:"disabled"`
}

type Navigation struct {
	Items []NavItem  `json:"items"`
	Prev  NavControl `json:"prev"`
	Next  NavControl `json:"next"`
}

type Filters struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Tag      string `json:"tag"`
	Sort     string `json:"sort"`
	Active   bool   `json:"active"`
}

type ArticleList struct {
	Articles   []ArticleSummary `json:"articles"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
	From       int              `json:"from"`
	To         int              `json:"to"`
	Navigation Navigation       `json:"navigation"`
	Filters    Filters          `json:"filters"`
}

type Article struct {
	ArticleSummary
	HeroImage string `json:"heroImage,omitempty"`
	HTML      string `json:"html"`
	Fallback  bool   `json:"fallback"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
