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
	"skillswap/internal/domain/repository"
	"skillswap/internal/usecase"
)

// SkillHandler holds dependencies for the skill endpoints.
type SkillHandler struct {
	uc     usecase.SkillUsecase
	logger *slog.Logger
}

// NewSkillHandler is the constructor for SkillHandler, injected by Fx.
func NewSkillHandler(uc usecase.SkillUsecase, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{uc: uc, logger: logger}
}

// List returns skills, optionally filtered by userId, subcategoryId, and
// type_of_proposal query parameters.
func (h *SkillHandler) List(c echo.Context) error {
	filter, err := skillFilter(c)
	if err != nil {
		return err
	}

	skills, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, skills)
}

// Get returns one skill by id.
func (h *SkillHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	skill, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, skill)
}

// Create stores a new skill owned by the authenticated user.
func (h *SkillHandler) Create(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input usecase.SkillInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.BadRequest("invalid skill input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	skill, err := h.uc.Create(c.Request().Context(), identity.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, skill)
}

// Update replaces the writable fields of a skill. The id always comes from
// the URL.
func (h *SkillHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.SkillInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.BadRequest("invalid skill input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	skill, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, skill)
}

// Delete removes a skill by id.
func (h *SkillHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func skillFilter(c echo.Context) (repository.SkillFilter, error) {
	var filter repository.SkillFilter

	if raw := c.QueryParam("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, domainerrors.BadRequest("userId must be a number")
		}
		filter.UserID = &id
	}

	if raw := c.QueryParam("subcategoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, domainerrors.BadRequest("subcategoryId must be a number")
		}
		filter.SubcategoryID = &id
	}

	if raw := c.QueryParam("type_of_proposal"); raw != "" {
		proposal := entity.ProposalType(raw)
		filter.TypeOfProposal = &proposal
	}

	return filter, nil
}
