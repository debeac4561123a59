package service

import "time"

// Identity is the authenticated principal carried inside a token.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// TokenPair bundles the two token classes issued on register and login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService issues and verifies the two classes of signed, time-bounded
// tokens. Access and refresh tokens are signed with distinct secrets and
// carry a "type" claim, so that a token of one class is never accepted where
// the other is expected.
type TokenService interface {
	// IssueAccess signs a short-lived access token for the identity.
	IssueAccess(identity Identity) (string, error)

	// IssueRefresh signs a long-lived refresh token for the identity.
	IssueRefresh(identity Identity) (string, error)

	// IssuePair issues both token classes. The two calls share no state.
	IssuePair(identity Identity) (TokenPair, error)

	// VerifyAccess validates an access token and returns its identity.
	// It fails on bad signature, expiry, malformed input, or a non-access
	// type claim.
	VerifyAccess(token string) (*Identity, error)

	// VerifyRefresh validates a refresh token. It returns nil on any
	// failure, including a syntactically valid access token presented as a
	// refresh token; callers treat that as a normal case, not an exception.
	VerifyRefresh(token string) *Identity

	// RefreshTTL returns the configured refresh-token lifetime.
	RefreshTTL() time.Duration
}
