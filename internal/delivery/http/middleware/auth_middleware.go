package middleware

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/service"
)

// identityKey is the context key the authenticated identity is stored under.
const identityKey = "identity"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid bearer access token. A missing token is a
// 401; a present but invalid or expired token is a 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		identity, err := m.tokenSvc.VerifyAccess(token)
		if err != nil {
			return domainerrors.ErrForbidden
		}

		c.Set(identityKey, *identity)

		return next(c)
	}
}

// OptionalAuthenticate attaches the identity when a valid token is present
// and continues anonymously otherwise. It never rejects a request.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			if identity, err := m.tokenSvc.VerifyAccess(token); err == nil {
				c.Set(identityKey, *identity)
			}
		}

		return next(c)
	}
}

// AuthorizeSelf lets a request through only when the :id path parameter
// matches the authenticated user. It must run after Authenticate.
func (m *AuthMiddleware) AuthorizeSelf(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := CurrentIdentity(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id != identity.ID {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// CurrentIdentity returns the authenticated identity, if any.
func CurrentIdentity(c echo.Context) (service.Identity, bool) {
	identity, ok := c.Get(identityKey).(service.Identity)

	return identity, ok
}

// ViewerID returns the authenticated user id, or zero for anonymous
// requests.
func ViewerID(c echo.Context) int64 {
	identity, ok := CurrentIdentity(c)
	if !ok {
		return 0
	}

	return identity.ID
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}

	return token, true
}
