package port

import (
	"context"
	"property-service/internal/core/domain"
)

// BlogRepositoryPort is the persistence collaborator for blog posts.
type BlogRepositoryPort interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	FindPublished(ctx context.Context, limit, offset int) (*domain.PaginatedBlogPosts, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	IncrementViews(ctx context.Context, slug string) error
}
