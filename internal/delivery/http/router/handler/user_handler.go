package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"skillswap/internal/delivery/http/middleware"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/usecase"
)

// UserHandler holds dependencies for the user profile endpoints.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// List returns every user, enriched for the (possibly anonymous) viewer.
func (h *UserHandler) List(c echo.Context) error {
	views, err := h.uc.List(c.Request().Context(), middleware.ViewerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, views)
}

// Get returns one user by id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Get(c.Request().Context(), id, middleware.ViewerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, view)
}

// Update modifies the caller's own profile. The body is decoded strictly so
// protected fields like password or id cannot be smuggled in.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateUserInput
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		return domainerrors.BadRequest("request body contains invalid or unknown fields")
	}

	user, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, user)
}

// Delete removes the caller's own account.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
