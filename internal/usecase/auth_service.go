package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/repository"
	"skillswap/internal/domain/service"
)

// authService implements the AuthUsecase interface.
type authService struct {
	users  repository.UserRepository
	cities repository.CityRepository
	tokens repository.RefreshTokenRepository
	hasher service.PasswordHasher
	issuer service.TokenService
	logger *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	users repository.UserRepository,
	cities repository.CityRepository,
	tokens repository.RefreshTokenRepository,
	hasher service.PasswordHasher,
	issuer service.TokenService,
	logger *slog.Logger,
) AuthUsecase {
	return &authService{
		users:  users,
		cities: cities,
		tokens: tokens,
		hasher: hasher,
		issuer: issuer,
		logger: logger,
	}
}

// Register creates a new user account. All checks run before the user record
// is written, so a rejected registration leaves no partial state behind.
func (srv *authService) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	srv.logger.Info("starting user registration", "email", input.Email)

	if _, err := srv.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "check existing email")
	}

	if _, err := srv.cities.FindByID(ctx, input.CityID); err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.BadRequest("city does not exist")
		}

		return nil, errors.Wrap(err, "check city")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	now := time.Now()
	user := entity.User{
		Email:              input.Email,
		Password:           hash,
		Name:               input.Name,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		DateOfBirth:        input.DateOfBirth,
		Gender:             input.Gender,
		CityID:             input.CityID,
		AvatarURL:          input.AvatarURL,
		DateOfRegistration: now,
		LastLoginDatetime:  now,
	}
	if err := srv.users.Create(ctx, &user); err != nil {
		return nil, errors.Wrap(err, "create user")
	}

	output, err := srv.issueAndStore(ctx, user)
	if err != nil {
		return nil, err
	}
	srv.logger.Info("user registered", "userID", user.ID)

	return output, nil
}

// Login checks credentials and issues a fresh token pair.
func (srv *authService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	user, err := srv.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same response as a wrong password, see ErrInvalidCredentials.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "find user by email")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user.LastLoginDatetime = time.Now()
	if err := srv.users.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "update last login time")
	}

	output, err := srv.issueAndStore(ctx, *user)
	if err != nil {
		return nil, err
	}
	srv.logger.Info("user logged in", "userID", user.ID)

	return output, nil
}

// Refresh validates the refresh token cryptographically and against the
// store, then issues a new access token. The refresh token stays valid.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domainerrors.ErrRefreshTokenMissing
	}

	identity := srv.issuer.VerifyRefresh(refreshToken)
	if identity == nil {
		return "", domainerrors.ErrRefreshTokenInvalid
	}

	valid, err := srv.tokens.IsValid(ctx, identity.ID, refreshToken)
	if err != nil {
		return "", errors.Wrap(err, "check stored refresh token")
	}
	if !valid {
		return "", domainerrors.ErrRefreshTokenInvalid
	}

	accessToken, err := srv.issuer.IssueAccess(*identity)
	if err != nil {
		return "", errors.Wrap(err, "issue access token")
	}

	return accessToken, nil
}

// Logout revokes the supplied refresh token. A missing or already revoked
// token is not an error.
func (srv *authService) Logout(ctx context.Context, userID int64, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := srv.tokens.Revoke(ctx, userID, refreshToken); err != nil {
		return errors.Wrap(err, "revoke refresh token")
	}
	srv.logger.Info("user logged out", "userID", userID)

	return nil
}

// Me returns the authenticated user's current record.
func (srv *authService) Me(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The token may outlive the account.
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user")
	}

	safe := user.WithoutPassword()

	return &safe, nil
}

func (srv *authService) issueAndStore(ctx context.Context, user entity.User) (*AuthOutput, error) {
	pair, err := srv.issuer.IssuePair(service.Identity{ID: user.ID, Email: user.Email})
	if err != nil {
		return nil, errors.Wrap(err, "issue token pair")
	}

	if err := srv.tokens.Save(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, errors.Wrap(err, "store refresh token")
	}

	return &AuthOutput{
		User:         user.WithoutPassword(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
