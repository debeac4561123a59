package usecase

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/repository"
)

// userService implements the UserUsecase interface.
type userService struct {
	users  repository.UserRepository
	likes  repository.LikeRepository
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	users repository.UserRepository,
	likes repository.LikeRepository,
	logger *slog.Logger,
) UserUsecase {
	return &userService{users: users, likes: likes, logger: logger}
}

// List returns every user enriched with like counts for the viewer. The
// likes collection is read once and indexed in memory.
func (srv *userService) List(ctx context.Context, viewerID int64) ([]UserView, error) {
	users, err := srv.users.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	likes, err := srv.likes.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list likes")
	}

	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, enrich(user, likes, viewerID))
	}

	return views, nil
}

// Get returns one user enriched with like counts for the viewer.
func (srv *userService) Get(ctx context.Context, id, viewerID int64) (*UserView, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user")
	}

	likes, err := srv.likes.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list likes")
	}

	view := enrich(*user, likes, viewerID)

	return &view, nil
}

// Update applies the sent fields onto the stored record. Absent fields keep
// their stored value; the password and email never change through this path.
func (srv *userService) Update(ctx context.Context, id int64, input UpdateUserInput) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "find user")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = *input.DateOfBirth
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.CityID != nil {
		user.CityID = *input.CityID
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}

	if err := srv.users.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "update user")
	}
	srv.logger.Info("user profile updated", "userID", id)

	safe := user.WithoutPassword()

	return &safe, nil
}

// Delete removes the user record.
func (srv *userService) Delete(ctx context.Context, id int64) error {
	if err := srv.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "delete user")
	}
	srv.logger.Info("user deleted", "userID", id)

	return nil
}

func enrich(user entity.User, likes []entity.Like, viewerID int64) UserView {
	view := UserView{User: user.WithoutPassword()}
	for _, like := range likes {
		if like.ToUserID != user.ID {
			continue
		}
		view.LikesCount++
		if viewerID != 0 && like.FromUserID == viewerID {
			view.IsLikedByCurrentUser = true
		}
	}

	return view
}
