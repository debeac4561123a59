package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/usecase"
)

// CategoryHandler holds dependencies for the category endpoints.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, logger: logger}
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	category, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	input, err := bindNameInput(c)
	if err != nil {
		return err
	}

	category, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	input, err := bindNameInput(c)
	if err != nil {
		return err
	}

	category, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SubcategoryHandler holds dependencies for the subcategory endpoints.
type SubcategoryHandler struct {
	uc     usecase.SubcategoryUsecase
	logger *slog.Logger
}

// NewSubcategoryHandler is the constructor for SubcategoryHandler, injected by Fx.
func NewSubcategoryHandler(uc usecase.SubcategoryUsecase, logger *slog.Logger) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc, logger: logger}
}

func (h *SubcategoryHandler) List(c echo.Context) error {
	subcategories, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, subcategories)
}

func (h *SubcategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	subcategory, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, subcategory)
}

func (h *SubcategoryHandler) Create(c echo.Context) error {
	var input usecase.SubcategoryInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.BadRequest("invalid subcategory input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	subcategory, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, subcategory)
}

func (h *SubcategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.SubcategoryInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.BadRequest("invalid subcategory input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	subcategory, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, subcategory)
}

func (h *SubcategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CityHandler holds dependencies for the city endpoints.
type CityHandler struct {
	uc     usecase.CityUsecase
	logger *slog.Logger
}

// NewCityHandler is the constructor for CityHandler, injected by Fx.
func NewCityHandler(uc usecase.CityUsecase, logger *slog.Logger) *CityHandler {
	return &CityHandler{uc: uc, logger: logger}
}

func (h *CityHandler) List(c echo.Context) error {
	cities, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, cities)
}

func (h *CityHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	city, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, city)
}

func (h *CityHandler) Create(c echo.Context) error {
	input, err := bindNameInput(c)
	if err != nil {
		return err
	}

	city, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, city)
}

func (h *CityHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	input, err := bindNameInput(c)
	if err != nil {
		return err
	}

	city, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, city)
}

func (h *CityHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindNameInput(c echo.Context) (usecase.NameInput, error) {
	var input usecase.NameInput
	if err := c.Bind(&input); err != nil {
		return input, domainerrors.BadRequest("invalid input")
	}
	if err := c.Validate(input); err != nil {
		return input, err
	}

	return input, nil
}
