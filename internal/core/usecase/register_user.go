package usecase

import (
	"context"
	"errors"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type RegisterUserUseCase struct {
	users port.UserRepositoryPort
}

func NewRegisterUserUseCase(users port.UserRepositoryPort) *RegisterUserUseCase {
	return &RegisterUserUseCase{users: users}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, name, email, password string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RegisterUser",
		"email":    email,
	})
	ucLogger.Info("Use case started", nil)

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if existing != nil {
		ucLogger.Warn("Email already registered", nil)
		return nil, domain.ErrEmailInUse
	}

	user, err := domain.NewUser(name, email, password)
	if err != nil {
		ucLogger.Error("Failed to create user entity", err, nil)
		return nil, err
	}

	if err := uc.users.Create(ctx, user); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("User registered", port.Fields{"user_id": user.ID.String()})
	return user, nil
}
