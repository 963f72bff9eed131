package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type GetBlogPostUseCase struct {
	blog port.BlogRepositoryPort
}

func NewGetBlogPostUseCase(blog port.BlogRepositoryPort) *GetBlogPostUseCase {
	return &GetBlogPostUseCase{blog: blog}
}

func (uc *GetBlogPostUseCase) Execute(ctx context.Context, slug string) (*domain.BlogPost, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetBlogPost",
		"slug":     slug,
	})

	post, err := uc.blog.GetBySlug(ctx, slug)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	if err := uc.blog.IncrementViews(ctx, slug); err != nil {
		ucLogger.Warn("Failed to increment views", port.Fields{"error": err.Error()})
	}

	return post, nil
}
