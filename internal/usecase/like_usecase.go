package usecase

import (
	"context"

	"skillswap/internal/domain/entity"
)

// CreateLikeInput carries the like payload. The source user always comes
// from the token.
type CreateLikeInput struct {
	ToUserID int64  `json:"toUserId"`
	SkillID  *int64 `json:"skillId"`
}

// LikeInfo is the per-user like summary served by the users-info endpoints.
type LikeInfo struct {
	UserID               int64 `json:"userId"`
	LikesCount           int   `json:"likesCount"`
	IsLikedByCurrentUser bool  `json:"isLikedByCurrentUser"`
}

// LikeUsecase defines the like operations the delivery layer depends on.
type LikeUsecase interface {
	// UsersInfo returns the like summary for each requested user, relative
	// to the viewer. Viewer id zero means anonymous.
	UsersInfo(ctx context.Context, userIDs []int64, viewerID int64) ([]LikeInfo, error)

	// Get returns one like record by id.
	Get(ctx context.Context, id int64) (*entity.Like, error)

	// Create records a like from fromUserID. Self-likes and duplicates are
	// rejected; the target user must exist.
	Create(ctx context.Context, fromUserID int64, input CreateLikeInput) (*entity.Like, error)

	// Delete removes a like by id. Only the like's author may delete it.
	Delete(ctx context.Context, id, requesterID int64) error

	// DeleteByTarget removes the requester's like of the target user.
	DeleteByTarget(ctx context.Context, fromUserID, toUserID int64) error
}
