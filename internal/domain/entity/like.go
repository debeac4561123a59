package entity

import "time"

// Like records one user liking another, optionally in the context of a skill.
// A (fromUserId, toUserId) pair is unique.
type Like struct {
	ID         int64     `json:"id"`
	FromUserID int64     `json:"fromUserId"`
	ToUserID   int64     `json:"toUserId"`
	SkillID    *int64    `json:"skillId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
