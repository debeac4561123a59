package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"skillswap/config"
	"skillswap/internal/domain/service"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// claims is the payload both token classes carry. The type discriminator,
// together with the distinct signing secrets, defends against token-class
// confusion: a long-lived access token must never pass where a refresh token
// is expected, and vice versa.
type claims struct {
	UserID    int64  `json:"id"`
	Email     string `json:"email"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface
// using HMAC-signed JWTs.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.Token.AccessTTL,
		refreshTTL:    cfg.Token.RefreshTTL,
	}, nil
}

// IssueAccess signs a short-lived access token for the identity.
func (s *jwtService) IssueAccess(identity service.Identity) (string, error) {
	return s.sign(identity, tokenTypeAccess, s.accessTTL, s.accessSecret)
}

// IssueRefresh signs a long-lived refresh token for the identity.
func (s *jwtService) IssueRefresh(identity service.Identity) (string, error) {
	return s.sign(identity, tokenTypeRefresh, s.refreshTTL, s.refreshSecret)
}

// IssuePair issues both token classes for the identity.
func (s *jwtService) IssuePair(identity service.Identity) (service.TokenPair, error) {
	accessToken, err := s.IssueAccess(identity)
	if err != nil {
		return service.TokenPair{}, err
	}

	refreshToken, err := s.IssueRefresh(identity)
	if err != nil {
		return service.TokenPair{}, err
	}

	return service.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyAccess validates an access token and returns the identity it asserts.
func (s *jwtService) VerifyAccess(token string) (*service.Identity, error) {
	parsed, err := s.parse(token, s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}
	if parsed.TokenType != tokenTypeAccess {
		return nil, errors.New("token is not an access token")
	}

	return &service.Identity{ID: parsed.UserID, Email: parsed.Email}, nil
}

// VerifyRefresh validates a refresh token. Any failure, including an access
// token presented as a refresh token, yields nil.
func (s *jwtService) VerifyRefresh(token string) *service.Identity {
	parsed, err := s.parse(token, s.refreshSecret)
	if err != nil || parsed.TokenType != tokenTypeRefresh {
		return nil
	}

	return &service.Identity{ID: parsed.UserID, Email: parsed.Email}
}

// RefreshTTL returns the configured refresh-token lifetime.
func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) sign(identity service.Identity, tokenType string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID:    identity.ID,
		Email:     identity.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(tokenString, secret string) (*claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	parsed, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return parsed, nil
}
