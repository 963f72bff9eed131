package port

import (
	"context"
	"property-service/internal/core/domain"
	"time"
)

// TokenServicePort issues and validates authentication tokens.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
}
