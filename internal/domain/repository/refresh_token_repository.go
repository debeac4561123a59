package repository

import "context"

// RefreshTokenRepository owns the mapping from a user to their single active
// refresh token. Save enforces the at-most-one-record-per-user invariant
// inside the repository rather than relying on caller discipline.
type RefreshTokenRepository interface {
	// Save removes any existing record for userID and persists the new token
	// in one read-modify-write cycle. Afterwards exactly one record exists
	// for userID.
	Save(ctx context.Context, userID int64, token string) error

	// IsValid reports whether the exact (userID, token) pair is present.
	// A missing collection file reads as "no tokens", not an error.
	IsValid(ctx context.Context, userID int64, token string) (bool, error)

	// Revoke removes the matching record. Revoking an absent token is a
	// deliberate no-op so that logout stays idempotent.
	Revoke(ctx context.Context, userID int64, token string) error
}
