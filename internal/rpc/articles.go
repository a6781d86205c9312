package rpc

import (
	"context"

	"github.com/daniilsolovey/devocrazia/internal/devocrazia"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// ArticleService provides RPC methods for article discovery.
type ArticleService struct {
	zenrpc.Service
	manager *devocrazia.Manager
}

func NewArticleService(manager *devocrazia.Manager) *ArticleService {
	return &ArticleService{manager: manager}
}

// List filters, sorts and paginates the catalog.
//
//zenrpc:filter listing filter
//zenrpc:return one page of article summaries
//zenrpc:400 page must be positive
func (s *ArticleService) List(ctx context.Context, filter ListFilter) (*ArticleList, error) {
	if filter.Page != nil && *filter.Page < 1 {
		return nil, zenrpc.NewStringError(400, "page must be positive")
	}

	list := NewArticleList(s.manager.Listing(filter.ToState()))
	return &list, nil
}

// BySlug returns an article with its rendered body.
//
//zenrpc:slug article slug
//zenrpc:return article with rendered HTML
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *ArticleService) BySlug(ctx context.Context, slug string) (*Article, error) {
	detail, ok := s.manager.Detail(ctx, slug)
	if !ok {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	body, err := detail.Document.HTML()
	if err != nil {
		return nil, err
	}

	article := NewArticle(*detail, body)
	return &article, nil
}

// Categories returns categories with article counts in catalog order.
//
//zenrpc:return list of categories
func (s *ArticleService) Categories(ctx context.Context) ([]CategoryCount, error) {
	return Map(s.manager.Categories(), NewCategoryCount), nil
}

// Tags returns distinct tags in catalog order.
//
//zenrpc:return list of tags
func (s *ArticleService) Tags(ctx context.Context) ([]string, error) {
	return s.manager.Tags(), nil
}
