package usecases_port

import (
	"context"
	"property-service/internal/core/domain"
)

type ListBlogPostsUseCase interface {
	Execute(ctx context.Context, page, limit int) ([]domain.BlogPost, domain.Pagination, error)
}

type GetBlogPostUseCase interface {
	Execute(ctx context.Context, slug string) (*domain.BlogPost, error)
}

type CreateBlogPostUseCase interface {
	Execute(ctx context.Context, post *domain.BlogPost) error
}
