// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/service"
	"skillswap/internal/usecase"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	avatars service.AvatarService
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, avatars service.AvatarService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, avatars: avatars, logger: logger}
}

// registerForm carries the multipart text fields of the register request.
// The avatar file is handled separately.
type registerForm struct {
	Email       string `form:"email" validate:"required,email"`
	Password    string `form:"password" validate:"required,min=6"`
	Name        string `form:"name" validate:"required"`
	FirstName   string `form:"firstName" validate:"required"`
	LastName    string `form:"lastName" validate:"required"`
	DateOfBirth string `form:"dateOfBirth" validate:"required"`
	Gender      string `form:"gender" validate:"required,oneof=M F"`
	CityID      string `form:"cityId" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Register handles user registration with a multipart avatar upload.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return domainerrors.BadRequest("invalid registration input")
	}
	if err := c.Validate(form); err != nil {
		return err
	}

	cityID, err := strconv.ParseInt(form.CityID, 10, 64)
	if err != nil {
		return domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "cityId",
			Message: "must be a number",
		})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return domainerrors.ErrAvatarRequired
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open avatar upload")
	}
	defer file.Close()

	result, err := h.avatars.Store(c.Request().Context(), file)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:       form.Email,
		Password:    form.Password,
		Name:        form.Name,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		DateOfBirth: form.DateOfBirth,
		Gender:      entity.Gender(form.Gender),
		CityID:      cityID,
		AvatarURL:   result.URL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, output)
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return domainerrors.BadRequest("invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Refresh exchanges a refresh token for a new access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input refreshRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrRefreshTokenMissing
	}

	accessToken, err := h.uc.Refresh(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"accessToken": accessToken})
}

// Logout revokes the caller's refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input refreshRequest
	if err := c.Bind(&input); err != nil {
		// A missing body still logs out; there is just nothing to revoke.
		input.RefreshToken = ""
	}

	if err := h.uc.Logout(c.Request().Context(), identity.ID, input.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	user, err := h.uc.Me(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, user)
}
