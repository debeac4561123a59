package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"skillswap/internal/delivery/http/middleware"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/usecase"
)

// LikeHandler holds dependencies for the like endpoints.
type LikeHandler struct {
	uc     usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{uc: uc, logger: logger}
}

// UsersInfo returns the like summary for a batch of users.
func (h *LikeHandler) UsersInfo(c echo.Context) error {
	var input struct {
		UserIDs []int64 `json:"userIds"`
	}
	if err := c.Bind(&input); err != nil {
		return domainerrors.BadRequest("userIds must be a non-empty array")
	}

	infos, err := h.uc.UsersInfo(c.Request().Context(), input.UserIDs, middleware.ViewerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, infos)
}

// UserInfo returns the like summary for a single user.
func (h *LikeHandler) UserInfo(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return domainerrors.BadRequest("userId must be a number")
	}

	infos, err := h.uc.UsersInfo(c.Request().Context(), []int64{userID}, middleware.ViewerID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, infos[0])
}

// Get returns one like record by id.
func (h *LikeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	like, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, like)
}

// Create records a like from the authenticated user.
func (h *LikeHandler) Create(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input usecase.CreateLikeInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.BadRequest("invalid like input")
	}

	like, err := h.uc.Create(c.Request().Context(), identity.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, like)
}

// Delete removes a like by id; only the author may do so.
func (h *LikeHandler) Delete(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id, identity.ID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteByTarget removes the caller's like of the user named in the
// toUserId query parameter.
func (h *LikeHandler) DeleteByTarget(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	toUserID, err := strconv.ParseInt(c.QueryParam("toUserId"), 10, 64)
	if err != nil {
		return domainerrors.BadRequest("toUserId query parameter is required")
	}

	if err := h.uc.DeleteByTarget(c.Request().Context(), identity.ID, toUserID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
