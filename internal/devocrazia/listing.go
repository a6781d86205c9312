package devocrazia

// ListingState is the interactive state of the listing view. Changing any
// filter or the sort order sends the view back to page 1 so it never strands
// on a page the narrowed result no longer has.
type ListingState struct {
	Search   string
	Category string
	Tag      string
	Sort     SortKey
	Page     int
}

// NewListingState returns the default state, with the category pre-selected
// from the listing address when categoryParam is not empty.
func NewListingState(categoryParam string) ListingState {
	s := ListingState{
		Category: All,
		Tag:      All,
		Sort:     SortRecent,
		Page:     1,
	}
	if categoryParam != "" {
		s.Category = categoryParam
	}

	return s
}

func (s *ListingState) SetSearch(q string) {
	s.Search = q
	s.Page = 1
}

// SetCategory selects a category. An empty value selects All.
func (s *ListingState) SetCategory(category string) {
	if category == "" {
		category = All
	}
	s.Category = category
	s.Page = 1
}

// SetTag selects a tag. An empty value selects All.
func (s *ListingState) SetTag(tag string) {
	if tag == "" {
		tag = All
	}
	s.Tag = tag
	s.Page = 1
}

func (s *ListingState) SetSort(key SortKey) {
	s.Sort = key
	s.Page = 1
}

// GoTo moves to page n, clamped into [1, totalPages].
func (s *ListingState) GoTo(n, totalPages int) {
	s.Page = clamp(n, 1, max(1, totalPages))
}

func (s *ListingState) Prev(totalPages int) {
	s.GoTo(s.Page-1, totalPages)
}

func (s *ListingState) Next(totalPages int) {
	s.GoTo(s.Page+1, totalPages)
}

// Clear restores every filter, the sort order and the page to their defaults.
func (s *ListingState) Clear() {
	*s = NewListingState("")
}

func (s ListingState) HasActiveFilters() bool {
	c := s.Criteria()
	return c.Search != "" || c.categoryActive() || c.tagActive()
}

func (s ListingState) Criteria() Criteria {
	return Criteria{
		Search:   s.Search,
		Category: s.Category,
		Tag:      s.Tag,
	}
}

// Listing is one computed listing view.
type Listing struct {
	State      ListingState
	Page       Page
	Navigation Navigation
	// Matched is the number of articles passing the filters, across all pages.
	Matched int
}
