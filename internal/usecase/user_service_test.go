package usecase_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/config"
	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/infra/jsonstore"
	"skillswap/internal/usecase"
)

func newUserFixture(t *testing.T) (usecase.UserUsecase, usecase.LikeUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Path = t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := jsonstore.New(cfg, logger)
	require.NoError(t, err)

	users := jsonstore.NewUserRepository(store)
	likes := jsonstore.NewLikeRepository(store)

	for _, email := range []string{"a@example.com", "b@example.com"} {
		require.NoError(t, users.Create(context.Background(), &entity.User{
			Email:    email,
			Password: "hash-never-leaves",
		}))
	}

	return usecase.NewUserService(users, likes, logger), usecase.NewLikeService(likes, users, logger)
}

func TestUserService_ListStripsPasswordsAndEnriches(t *testing.T) {
	userUC, likeUC := newUserFixture(t)
	ctx := context.Background()

	_, err := likeUC.Create(ctx, 2, usecase.CreateLikeInput{ToUserID: 1})
	require.NoError(t, err)

	views, err := userUC.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, views, 2)

	for _, view := range views {
		assert.Empty(t, view.Password)
	}
	assert.Equal(t, 1, views[0].LikesCount)
	assert.True(t, views[0].IsLikedByCurrentUser)
	assert.Equal(t, 0, views[1].LikesCount)
}

func TestUserService_GetAnonymousViewer(t *testing.T) {
	userUC, likeUC := newUserFixture(t)
	ctx := context.Background()

	_, err := likeUC.Create(ctx, 2, usecase.CreateLikeInput{ToUserID: 1})
	require.NoError(t, err)

	view, err := userUC.Get(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, view.LikesCount)
	assert.False(t, view.IsLikedByCurrentUser)
}

func TestUserService_GetUnknownUser(t *testing.T) {
	userUC, _ := newUserFixture(t)

	_, err := userUC.Get(context.Background(), 42, 0)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateAppliesOnlySentFields(t *testing.T) {
	userUC, _ := newUserFixture(t)
	ctx := context.Background()

	name := "Updated"
	updated, err := userUC.Update(ctx, 1, usecase.UpdateUserInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Updated", updated.Name)
	assert.Equal(t, "a@example.com", updated.Email)
	assert.Empty(t, updated.Password, "update response must not carry the hash")

	view, err := userUC.Get(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "Updated", view.Name)
}

func TestUserService_DeleteThenGet(t *testing.T) {
	userUC, _ := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, userUC.Delete(ctx, 1))

	_, err := userUC.Get(ctx, 1, 0)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	err = userUC.Delete(ctx, 1)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
