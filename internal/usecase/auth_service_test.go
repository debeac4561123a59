package usecase_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"skillswap/config"
	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/repository"
	"skillswap/internal/domain/service"
	"skillswap/internal/infra/auth"
	"skillswap/internal/infra/jsonstore"
	"skillswap/internal/usecase"
)

type authFixture struct {
	auth   usecase.AuthUsecase
	users  repository.UserRepository
	tokens repository.RefreshTokenRepository
	issuer service.TokenService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Path = t.TempDir()
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Token.AccessTTL = 15 * time.Minute
	cfg.Token.RefreshTTL = 30 * 24 * time.Hour
	cfg.Auth.BcryptCost = bcrypt.MinCost

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := jsonstore.New(cfg, logger)
	require.NoError(t, err)

	issuer, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	users := jsonstore.NewUserRepository(store)
	cities := jsonstore.NewCityRepository(store)
	tokens := jsonstore.NewRefreshTokenRepository(store)

	require.NoError(t, cities.Create(context.Background(), &entity.City{Name: "Riga"}))

	return &authFixture{
		auth:   usecase.NewAuthService(users, cities, tokens, auth.NewBcryptHasher(cfg), issuer, logger),
		users:  users,
		tokens: tokens,
		issuer: issuer,
	}
}

func registerInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:       "anna@example.com",
		Password:    "secret123",
		Name:        "anna",
		FirstName:   "Anna",
		LastName:    "Berzina",
		DateOfBirth: "1995-04-12",
		Gender:      entity.GenderFemale,
		CityID:      1,
		AvatarURL:   "http://localhost:3001/uploads/avatars/avatar-test.jpg",
	}
}

func TestAuthService_RegisterStripsPasswordAndStoresHash(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	output, err := fx.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), output.User.ID)
	assert.Empty(t, output.User.Password, "response must not carry the password hash")
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)

	stored, err := fx.users.FindByID(ctx, output.User.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.Password)
	assert.NotEqual(t, "secret123", stored.Password, "password must be stored hashed")
}

func TestAuthService_RegisterRejectsDuplicateEmail(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = fx.auth.Register(ctx, registerInput())
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_RegisterRejectsUnknownCity(t *testing.T) {
	fx := newAuthFixture(t)

	input := registerInput()
	input.CityID = 99

	_, err := fx.auth.Register(context.Background(), input)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestAuthService_RegisterPersistsRefreshToken(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	output, err := fx.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	valid, err := fx.tokens.IsValid(ctx, output.User.ID, output.RefreshToken)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	_, unknownEmailErr := fx.auth.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	_, wrongPasswordErr := fx.auth.Login(ctx, usecase.LoginInput{
		Email:    "anna@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, unknownEmailErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestAuthService_LoginUpdatesLastLoginAndToken(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	registered, err := fx.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	loggedIn, err := fx.auth.Login(ctx, usecase.LoginInput{
		Email:    "anna@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.Empty(t, loggedIn.User.Password)
	assert.False(t, loggedIn.User.LastLoginDatetime.Before(registered.User.LastLoginDatetime))
}

func TestAuthService_LoginReplacesStoredRefreshToken(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	registered, err := fx.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	// Refresh tokens embed issue time at second precision; wait so the login
	// token differs from the registration token.
	time.Sleep(1100 * time.Millisecond)

	loggedIn, err := fx.auth.Login(ctx, usecase.LoginInput{
		Email:    "anna@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEqual(t, registered.RefreshToken, loggedIn.RefreshToken)

	// The registration-time token is gone from the store, so refresh with it
	// fails even though its signature is still valid.
	_, err = fx.auth.Refresh(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

	accessToken, err := fx.auth.Refresh(ctx, loggedIn.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
}

func TestAuthService_RefreshRejectsMissingToken(t *testing.T) {
	fx := newAuthFixture(t)

	_, err := fx.auth.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenMissing)
}

func TestAuthService_RefreshRejectsAccessTokenAsRefresh(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	output, err := fx.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = fx.auth.Refresh(ctx, output.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshDoesNotRotate(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	output, err := fx.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = fx.auth.Refresh(ctx, output.RefreshToken)
	require.NoError(t, err)

	// The same refresh token keeps working after a refresh.
	_, err = fx.auth.Refresh(ctx, output.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_LogoutRevokesAndIsIdempotent(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	output, err := fx.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	require.NoError(t, fx.auth.Logout(ctx, output.User.ID, output.RefreshToken))

	_, err = fx.auth.Refresh(ctx, output.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

	// Logging out again with the same token still succeeds.
	assert.NoError(t, fx.auth.Logout(ctx, output.User.ID, output.RefreshToken))
}

func TestAuthService_MeReturnsCurrentProfile(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	output, err := fx.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	me, err := fx.auth.Me(ctx, output.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", me.Email)
	assert.Empty(t, me.Password)
}

func TestAuthService_MeAfterDeleteIs404(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	output, err := fx.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	require.NoError(t, fx.users.Delete(ctx, output.User.ID))

	_, err = fx.auth.Me(ctx, output.User.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
