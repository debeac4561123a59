package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/repository"
)

// likeService implements the LikeUsecase interface.
type likeService struct {
	likes  repository.LikeRepository
	users  repository.UserRepository
	logger *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(
	likes repository.LikeRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) LikeUsecase {
	return &likeService{likes: likes, users: users, logger: logger}
}

// UsersInfo computes the like summary for each requested user over a single
// read of the likes collection.
func (srv *likeService) UsersInfo(ctx context.Context, userIDs []int64, viewerID int64) ([]LikeInfo, error) {
	if len(userIDs) == 0 {
		return nil, domainerrors.BadRequest("userIds must be a non-empty array")
	}

	likes, err := srv.likes.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list likes")
	}

	infos := make([]LikeInfo, 0, len(userIDs))
	for _, userID := range userIDs {
		info := LikeInfo{UserID: userID}
		for _, like := range likes {
			if like.ToUserID != userID {
				continue
			}
			info.LikesCount++
			if viewerID != 0 && like.FromUserID == viewerID {
				info.IsLikedByCurrentUser = true
			}
		}
		infos = append(infos, info)
	}

	return infos, nil
}

func (srv *likeService) Get(ctx context.Context, id int64) (*entity.Like, error) {
	like, err := srv.likes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return nil, domainerrors.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "find like")
	}

	return like, nil
}

// Create records a new like after the business checks pass.
func (srv *likeService) Create(ctx context.Context, fromUserID int64, input CreateLikeInput) (*entity.Like, error) {
	if input.ToUserID == 0 {
		return nil, domainerrors.ErrLikeTargetID
	}
	if input.ToUserID == fromUserID {
		return nil, domainerrors.ErrSelfLike
	}

	if _, err := srv.users.FindByID(ctx, input.ToUserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.BadRequest("target user does not exist")
		}

		return nil, errors.Wrap(err, "check target user")
	}

	if _, err := srv.likes.FindByPair(ctx, fromUserID, input.ToUserID); err == nil {
		return nil, domainerrors.ErrLikeExists
	} else if !errors.Is(err, repository.ErrLikeNotFound) {
		return nil, errors.Wrap(err, "check existing like")
	}

	like := entity.Like{
		FromUserID: fromUserID,
		ToUserID:   input.ToUserID,
		SkillID:    input.SkillID,
		CreatedAt:  time.Now(),
	}
	if err := srv.likes.Create(ctx, &like); err != nil {
		return nil, errors.Wrap(err, "create like")
	}
	srv.logger.Info("like created", "fromUserID", fromUserID, "toUserID", input.ToUserID)

	return &like, nil
}

// Delete removes a like if the requester is its author.
func (srv *likeService) Delete(ctx context.Context, id, requesterID int64) error {
	like, err := srv.likes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return domainerrors.ErrLikeNotFound
		}

		return errors.Wrap(err, "find like")
	}

	if like.FromUserID != requesterID {
		return domainerrors.ErrForbidden
	}

	if err := srv.likes.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete like")
	}

	return nil
}

// DeleteByTarget removes the requester's like of the target user, addressed
// by the pair instead of the like id.
func (srv *likeService) DeleteByTarget(ctx context.Context, fromUserID, toUserID int64) error {
	like, err := srv.likes.FindByPair(ctx, fromUserID, toUserID)
	if err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return domainerrors.ErrLikeNotFound
		}

		return errors.Wrap(err, "find like")
	}

	if err := srv.likes.Delete(ctx, like.ID); err != nil {
		return errors.Wrap(err, "delete like")
	}

	return nil
}
