package rest

import (
	"github.com/daniilsolovey/devocrazia/internal/catalog"
	"github.com/daniilsolovey/devocrazia/internal/devocrazia"
	"github.com/daniilsolovey/devocrazia/internal/render"
)

const siteName = "Devocrazia"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewArticleSummary(a catalog.Article) ArticleSummary {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	return ArticleSummary{
		ID:            a.ID,
		Slug:          a.Slug,
		Category:      a.Category,
		CategoryColor: a.CategoryColor,
		Title:         a.Title,
		Description:   a.Description,
		AuthorName:    a.AuthorName,
		Date:          a.ISODate(),
		DisplayDate:   a.ShortDate(),
		ReadTime:      a.ReadTime,
		Image:         a.Image,
		Tags:          tags,
	}
}

func NewArticle(a catalog.Article) Article {
	return Article{
		ArticleSummary: NewArticleSummary(a),
		HeroImage:      a.HeroImage,
		LongDate:       a.LongDate(),
	}
}

func NewMeta(a catalog.Article) Meta {
	return Meta{
		Title:       a.Title + " | " + siteName,
		Description: a.Description,
		Type:        "article",
		TwitterCard: "summary_large_image",
	}
}

func NewListing(l devocrazia.Listing) Listing {
	return Listing{
		Articles:   Map(l.Page.Items, NewArticleSummary),
		Page:       l.Page.Number,
		PageSize:   l.Page.Size,
		TotalItems: l.Page.TotalItems,
		TotalPages: l.Page.TotalPages,
		From:       l.Page.From(),
		To:         l.Page.To(),
		Navigation: NewNavigation(l.Navigation),
		Filters: Filters{
			Search:   l.State.Search,
			Category: l.State.Category,
			Tag:      l.State.Tag,
			Sort:     string(l.State.Sort),
			Active:   l.State.HasActiveFilters(),
		},
	}
}

func NewNavigation(n devocrazia.Navigation) Navigation {
	return Navigation{
		Items: Map(n.Items, func(item devocrazia.NavItem) NavItem {
			return NavItem{Kind: string(item.Kind), Number: item.Number, Active: item.Active}
		}),
		Prev: NavControl{Target: n.Prev.Target, Disabled: n.Prev.Disabled},
		Next: NavControl{Target: n.Next.Target, Disabled: n.Next.Disabled},
	}
}

func NewCategoryCount(c catalog.CategoryCount) CategoryCount {
	return CategoryCount{Name: c.Name, Count: c.Count}
}

func NewBlock(b render.Block) Block {
	block := Block{
		Kind:     string(b.Kind),
		Level:    b.Level,
		ID:       b.ID,
		Tight:    b.Tight,
		Ordered:  b.Ordered,
		Start:    b.Start,
		Inlines:  newInlines(b.Inlines),
		Children: newBlocks(b.Children),
	}

	if b.Code != nil {
		block.Code = &CodeBlock{
			Language: b.Code.Language,
			Text:     b.Code.Text,
			Tokens: Map(b.Code.Tokens, func(t render.Token) Token {
				return Token{Class: t.Class, Text: t.Text}
			}),
		}
	}

	if b.Table != nil {
		block.Table = &Table{
			Align: Map(b.Table.Align, func(a render.Alignment) string {
				return string(a)
			}),
			Header: Map(b.Table.Header, newInlines),
			Rows: Map(b.Table.Rows, func(row [][]render.Inline) [][]Inline {
				return Map(row, newInlines)
			}),
		}
	}

	return block
}

func NewInline(in render.Inline) Inline {
	return Inline{
		Kind:     string(in.Kind),
		Text:     in.Text,
		URL:      in.URL,
		Title:    in.Title,
		Target:   in.Target,
		Rel:      in.Rel,
		Checked:  in.Checked,
		Children: newInlines(in.Children),
	}
}

func newBlocks(list []render.Block) []Block {
	if len(list) == 0 {
		return nil
	}
	return Map(list, NewBlock)
}

func newInlines(list []render.Inline) []Inline {
	if len(list) == 0 {
		return nil
	}
	return Map(list, NewInline)
}
