package devocrazia

import "github.com/daniilsolovey/devocrazia/internal/catalog"

const (
	DefaultPageSize = 5

	// maxPlainPages is the page count up to which every page number is shown.
	maxPlainPages = 7
)

type Page struct {
	Items      []catalog.Article
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// From is the 1-based position of the first item on the page, 0 when empty.
func (p Page) From() int {
	if len(p.Items) == 0 {
		return 0
	}

	return (p.Number-1)*p.Size + 1
}

// To is the 1-based position of the last item on the page, 0 when empty.
func (p Page) To() int {
	if len(p.Items) == 0 {
		return 0
	}

	return min(p.Number*p.Size, p.TotalItems)
}

// TotalPages returns max(1, ceil(totalItems/pageSize)).
func TotalPages(totalItems, pageSize int) int {
	if pageSize < 1 || totalItems <= 0 {
		return 1
	}

	return (totalItems + pageSize - 1) / pageSize
}

// Paginate slices out the requested 1-based page. A page past the end yields
// an empty slice rather than an error.
func Paginate(items []catalog.Article, pageSize, page int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	p := Page{
		Items:      []catalog.Article{},
		Number:     page,
		Size:       pageSize,
		TotalItems: len(items),
		TotalPages: TotalPages(len(items), pageSize),
	}

	// compare pages before multiplying: (page-1)*pageSize can overflow
	if page > p.TotalPages || len(items) == 0 {
		return p
	}

	offset := (page - 1) * pageSize

	end := min(offset+pageSize, len(items))
	p.Items = append(p.Items, items[offset:end]...)

	return p
}

type NavKind string

const (
	NavPage     NavKind = "page"
	NavEllipsis NavKind = "ellipsis"
)

type NavItem struct {
	Kind   NavKind
	Number int
	Active bool
}

// NavControl is a Previous or Next control. Target is always inside
// [1, totalPages]; a disabled control targets the current page.
type NavControl struct {
	Target   int
	Disabled bool
}

type Navigation struct {
	Items []NavItem
	Prev  NavControl
	Next  NavControl
}

// NavigationWindow builds the compact list of page controls: every page when
// there are at most seven, otherwise the first and last page around a
// three-page window with ellipsis markers for the gaps.
func NavigationWindow(totalPages, currentPage int) []NavItem {
	if totalPages < 1 {
		totalPages = 1
	}

	page := func(n int) NavItem {
		return NavItem{Kind: NavPage, Number: n, Active: n == currentPage}
	}

	if totalPages <= maxPlainPages {
		items := make([]NavItem, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			items = append(items, page(i))
		}
		return items
	}

	items := make([]NavItem, 0, maxPlainPages)
	items = append(items, page(1))

	if currentPage > 3 {
		items = append(items, NavItem{Kind: NavEllipsis})
	}

	start := max(2, currentPage-1)
	end := min(totalPages-1, currentPage+1)
	for i := start; i <= end; i++ {
		items = append(items, page(i))
	}

	if currentPage < totalPages-2 {
		items = append(items, NavItem{Kind: NavEllipsis})
	}

	return append(items, page(totalPages))
}

func NewNavigation(totalPages, currentPage int) Navigation {
	if totalPages < 1 {
		totalPages = 1
	}
	current := clamp(currentPage, 1, totalPages)

	return Navigation{
		Items: NavigationWindow(totalPages, current),
		Prev: NavControl{
			Target:   clamp(current-1, 1, totalPages),
			Disabled: current == 1,
		},
		Next: NavControl{
			Target:   clamp(current+1, 1, totalPages),
			Disabled: current == totalPages,
		},
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
