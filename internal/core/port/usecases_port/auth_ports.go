package usecases_port

import (
	"context"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

type RegisterUserUseCase interface {
	Execute(ctx context.Context, name, email, password string) (*domain.User, error)
}

type LoginUserUseCase interface {
	Execute(ctx context.Context, email, password string) (string, *domain.User, error)
}

type ValidateTokenUseCase interface {
	Execute(ctx context.Context, tokenString string) (*domain.Claims, error)
}

type GetUserUseCase interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
