// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"warta/internal/domain/entity"
)

// LoginInput defines the data required for an author to log in.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for session-related business operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Login verifies the credentials and issues a session token. Missing
	// and wrong credentials map to distinct errors; a wrong password and
	// an unknown username are indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
