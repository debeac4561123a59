package entity

import "time"

// RefreshToken is the persisted half of a refresh credential. A token is
// accepted by /refresh only while its exact (userId, token) pair exists in
// the store; the store holds at most one record per user.
type RefreshToken struct {
	UserID    int64     `json:"userId"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}
