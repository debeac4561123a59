package usecase

import (
	"context"

	"skillswap/internal/domain/entity"
)

// UserView is a user profile enriched with like information relative to the
// viewer. Viewer id zero means anonymous.
type UserView struct {
	entity.User
	LikesCount           int  `json:"likesCount"`
	IsLikedByCurrentUser bool `json:"isLikedByCurrentUser"`
}

// UpdateUserInput carries the editable profile fields. Pointer fields
// distinguish "not sent" from an explicit zero value.
type UpdateUserInput struct {
	Name        *string        `json:"name"`
	FirstName   *string        `json:"firstName"`
	LastName    *string        `json:"lastName"`
	DateOfBirth *string        `json:"dateOfBirth"`
	Gender      *entity.Gender `json:"gender"`
	CityID      *int64         `json:"cityId"`
	AvatarURL   *string        `json:"avatarUrl"`
}

// UserUsecase defines the profile operations the delivery layer depends on.
type UserUsecase interface {
	// List returns every user, passwords stripped, enriched for the viewer.
	List(ctx context.Context, viewerID int64) ([]UserView, error)

	// Get returns one user, password stripped, enriched for the viewer.
	Get(ctx context.Context, id, viewerID int64) (*UserView, error)

	// Update applies the supplied fields to the user's own profile. The
	// password and email are never touched here.
	Update(ctx context.Context, id int64, input UpdateUserInput) (*entity.User, error)

	// Delete removes the user's own account.
	Delete(ctx context.Context, id int64) error
}
