package usecase

import (
	"context"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type ValidateTokenUseCase struct {
	tokens port.TokenServicePort
}

func NewValidateTokenUseCase(tokens port.TokenServicePort) *ValidateTokenUseCase {
	return &ValidateTokenUseCase{tokens: tokens}
}

func (uc *ValidateTokenUseCase) Execute(ctx context.Context, tokenString string) (*domain.Claims, error) {
	return uc.tokens.ValidateToken(ctx, tokenString)
}
