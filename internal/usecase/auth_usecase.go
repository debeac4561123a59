// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"skillswap/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user. AvatarURL
// and Thumbnails are filled in by the delivery layer after the upload service
// has accepted the file.
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	FirstName   string
	LastName    string
	DateOfBirth string
	Gender      entity.Gender
	CityID      int64
	AvatarURL   string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the user together with a fresh token pair. The user is
// always stripped of the password hash.
type AuthOutput struct {
	User         entity.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// AuthUsecase defines the authentication flows the delivery layer depends on.
type AuthUsecase interface {
	// Register creates the user and logs them in atomically from the
	// client's point of view.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a fresh token pair. Unknown
	// email and wrong password fail identically.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Refresh exchanges a valid, still-stored refresh token for a new
	// access token. The refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// Logout revokes the supplied refresh token for the authenticated
	// user. Revoking an unknown token still succeeds.
	Logout(ctx context.Context, userID int64, refreshToken string) error

	// Me loads the authenticated user's current profile.
	Me(ctx context.Context, userID int64) (*entity.User, error)
}
