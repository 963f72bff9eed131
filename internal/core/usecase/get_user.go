package usecase

import (
	"context"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

// GetUserUseCase loads the account behind an authenticated request.
type GetUserUseCase struct {
	users port.UserRepositoryPort
}

func NewGetUserUseCase(users port.UserRepositoryPort) *GetUserUseCase {
	return &GetUserUseCase{users: users}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.users.GetByID(ctx, id)
}
