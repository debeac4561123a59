package repository

import (
	"context"
	"errors"

	"skillswap/internal/domain/entity"
)

// ErrLikeNotFound is returned when a like is not found.
var ErrLikeNotFound = errors.New("like not found")

// LikeRepository defines the operations for like persistence.
type LikeRepository interface {
	// List retrieves every like record.
	List(ctx context.Context) ([]entity.Like, error)

	FindByID(ctx context.Context, id int64) (*entity.Like, error)

	// FindByPair retrieves the like from one user to another, if any.
	FindByPair(ctx context.Context, fromUserID, toUserID int64) (*entity.Like, error)

	// CountByTarget returns how many likes a user has received.
	CountByTarget(ctx context.Context, toUserID int64) (int, error)

	Create(ctx context.Context, like *entity.Like) error
	Delete(ctx context.Context, id int64) error
}
