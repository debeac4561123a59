package jsonstore

import (
	"context"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

const usersCollection = "users"

// userRepository implements repository.UserRepository over users.json.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) List(_ context.Context) ([]entity.User, error) {
	return Read[entity.User](repo.store, usersCollection), nil
}

func (repo *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	for _, user := range Read[entity.User](repo.store, usersCollection) {
		if user.ID == id {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range Read[entity.User](repo.store, usersCollection) {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	return Update(repo.store, usersCollection, func(users []entity.User) ([]entity.User, error) {
		var maxID int64
		for _, existing := range users {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		user.ID = maxID + 1

		return append(users, *user), nil
	})
}

func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	return Update(repo.store, usersCollection, func(users []entity.User) ([]entity.User, error) {
		for i, existing := range users {
			if existing.ID == user.ID {
				users[i] = *user

				return users, nil
			}
		}

		return nil, repository.ErrUserNotFound
	})
}

func (repo *userRepository) Delete(_ context.Context, id int64) error {
	return Update(repo.store, usersCollection, func(users []entity.User) ([]entity.User, error) {
		filtered := make([]entity.User, 0, len(users))
		for _, user := range users {
			if user.ID != id {
				filtered = append(filtered, user)
			}
		}
		if len(filtered) == len(users) {
			return nil, repository.ErrUserNotFound
		}

		return filtered, nil
	})
}
