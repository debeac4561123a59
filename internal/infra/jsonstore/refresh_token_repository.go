package jsonstore

import (
	"context"
	"time"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

const refreshTokensCollection = "refresh-tokens"

// refreshTokenRepository implements repository.RefreshTokenRepository over
// refresh-tokens.json. The replace-on-save discipline lives here so that
// the at-most-one-token-per-user invariant cannot be bypassed by callers.
type refreshTokenRepository struct {
	store *Store
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(store *Store) repository.RefreshTokenRepository {
	return &refreshTokenRepository{store: store}
}

func (repo *refreshTokenRepository) Save(_ context.Context, userID int64, token string) error {
	return Update(repo.store, refreshTokensCollection,
		func(tokens []entity.RefreshToken) ([]entity.RefreshToken, error) {
			kept := make([]entity.RefreshToken, 0, len(tokens)+1)
			for _, record := range tokens {
				if record.UserID != userID {
					kept = append(kept, record)
				}
			}

			return append(kept, entity.RefreshToken{
				UserID:    userID,
				Token:     token,
				CreatedAt: time.Now(),
			}), nil
		})
}

func (repo *refreshTokenRepository) IsValid(_ context.Context, userID int64, token string) (bool, error) {
	for _, record := range Read[entity.RefreshToken](repo.store, refreshTokensCollection) {
		if record.UserID == userID && record.Token == token {
			return true, nil
		}
	}

	return false, nil
}

func (repo *refreshTokenRepository) Revoke(_ context.Context, userID int64, token string) error {
	return Update(repo.store, refreshTokensCollection,
		func(tokens []entity.RefreshToken) ([]entity.RefreshToken, error) {
			kept := make([]entity.RefreshToken, 0, len(tokens))
			for _, record := range tokens {
				if record.UserID == userID && record.Token == token {
					continue
				}
				kept = append(kept, record)
			}

			// Revoking an absent token is a no-op.
			return kept, nil
		})
}
