// Package repository defines the persistence interfaces the domain depends
// on. Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"warta/internal/domain/entity"
	"warta/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository provides access to CMS author accounts.
type UserRepository interface {
	// FindByUsername retrieves a single user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. Only the seed step calls this.
	Create(ctx context.Context, user *entity.User) error

	// Count returns the total number of user accounts.
	Count(ctx context.Context) (int64, error)
}
