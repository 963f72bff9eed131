package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type ListBlogPostsUseCase struct {
	blog port.BlogRepositoryPort
}

func NewListBlogPostsUseCase(blog port.BlogRepositoryPort) *ListBlogPostsUseCase {
	return &ListBlogPostsUseCase{blog: blog}
}

func (uc *ListBlogPostsUseCase) Execute(ctx context.Context, page, limit int) ([]domain.BlogPost, domain.Pagination, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListBlogPosts",
		"page":     page,
		"limit":    limit,
	})

	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 || limit > domain.MaxLimit {
		limit = domain.DefaultLimit
	}

	result, err := uc.blog.FindPublished(ctx, limit, (page-1)*limit)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, domain.Pagination{}, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"total_found": result.TotalCount})
	return result.Posts, domain.NewPagination(page, limit, result.TotalCount), nil
}
