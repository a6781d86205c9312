package rpc

import (
	"github.com/daniilsolovey/devocrazia/internal/catalog"
	"github.com/daniilsolovey/devocrazia/internal/devocrazia"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewArticleSummary(a catalog.Article) ArticleSummary {
	summary := ArticleSummary{
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
		Tags:          a.Tags,
	}
	if summary.Tags == nil {
		summary.Tags = []string{}
	}

	return summary
}

func NewArticleList(l devocrazia.Listing) ArticleList {
	return ArticleList{
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

func NewArticle(d devocrazia.Detail, body string) Article {
	return Article{
		ArticleSummary: NewArticleSummary(d.Article),
		HeroImage:      d.Article.HeroImage,
		HTML:           body,
		Fallback:       d.Fallback,
	}
}

func NewCategoryCount(c catalog.CategoryCount) CategoryCount {
	return CategoryCount{Name: c.Name, Count: c.Count}
}
