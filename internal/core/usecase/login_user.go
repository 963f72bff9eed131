package usecase

import (
	"context"
	"errors"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
	"time"
)

type LoginUserUseCase struct {
	users    port.UserRepositoryPort
	tokens   port.TokenServicePort
	tokenTTL time.Duration
}

func NewLoginUserUseCase(users port.UserRepositoryPort, tokens port.TokenServicePort, tokenTTL time.Duration) *LoginUserUseCase {
	return &LoginUserUseCase{users: users, tokens: tokens, tokenTTL: tokenTTL}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, email, password string) (string, *domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "LoginUser",
		"email":    email,
	})
	ucLogger.Info("Use case started", nil)

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same answer as a wrong password, so the endpoint does not
			// leak which emails are registered.
			ucLogger.Warn("Login attempt for unknown email", nil)
			return "", nil, domain.ErrInvalidCredentials
		}
		ucLogger.Error("Repository returned an error", err, nil)
		return "", nil, err
	}

	if !user.IsActive {
		ucLogger.Warn("Login attempt for deactivated account", nil)
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		ucLogger.Warn("Invalid password", nil)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.GenerateToken(ctx, user, uc.tokenTTL)
	if err != nil {
		ucLogger.Error("Failed to generate token", err, nil)
		return "", nil, err
	}

	ucLogger.Info("User logged in", port.Fields{"user_id": user.ID.String()})
	return token, user, nil
}
