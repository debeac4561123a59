// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the flat-file storage in internal/infra/jsonstore.
package repository

import (
	"context"
	"errors"

	"skillswap/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// List retrieves every user record.
	List(ctx context.Context) ([]entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by exact (case-sensitive) email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user, assigning the next server-side ID
	// (max of existing IDs plus one, starting at 1).
	Create(ctx context.Context, user *entity.User) error

	// Update replaces the stored record matching user.ID.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given ID.
	Delete(ctx context.Context, id int64) error
}
