package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type CreateBlogPostUseCase struct {
	blog port.BlogRepositoryPort
}

func NewCreateBlogPostUseCase(blog port.BlogRepositoryPort) *CreateBlogPostUseCase {
	return &CreateBlogPostUseCase{blog: blog}
}

func (uc *CreateBlogPostUseCase) Execute(ctx context.Context, post *domain.BlogPost) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateBlogPost",
		"slug":     post.Slug,
	})
	ucLogger.Info("Use case started", nil)

	if err := uc.blog.Create(ctx, post); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Blog post created", port.Fields{"post_id": post.ID.String()})
	return nil
}
