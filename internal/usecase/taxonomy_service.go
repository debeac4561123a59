package usecase

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/repository"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categories repository.CategoryRepository
	logger     *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(categories repository.CategoryRepository, logger *slog.Logger) CategoryUsecase {
	return &categoryService{categories: categories, logger: logger}
}

func (srv *categoryService) List(ctx context.Context) ([]entity.Category, error) {
	categories, err := srv.categories.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}

	return categories, nil
}

func (srv *categoryService) Get(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "find category")
	}

	return category, nil
}

func (srv *categoryService) Create(ctx context.Context, input NameInput) (*entity.Category, error) {
	category := entity.Category{Name: input.Name}
	if err := srv.categories.Create(ctx, &category); err != nil {
		return nil, errors.Wrap(err, "create category")
	}
	srv.logger.Info("category created", "categoryID", category.ID)

	return &category, nil
}

func (srv *categoryService) Update(ctx context.Context, id int64, input NameInput) (*entity.Category, error) {
	category := entity.Category{ID: id, Name: input.Name}
	if err := srv.categories.Update(ctx, &category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "update category")
	}

	return &category, nil
}

func (srv *categoryService) Delete(ctx context.Context, id int64) error {
	if err := srv.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "delete category")
	}

	return nil
}

// subcategoryService implements the SubcategoryUsecase interface.
type subcategoryService struct {
	subcategories repository.SubcategoryRepository
	categories    repository.CategoryRepository
	logger        *slog.Logger
}

// NewSubcategoryService is the constructor for subcategoryService.
func NewSubcategoryService(
	subcategories repository.SubcategoryRepository,
	categories repository.CategoryRepository,
	logger *slog.Logger,
) SubcategoryUsecase {
	return &subcategoryService{subcategories: subcategories, categories: categories, logger: logger}
}

func (srv *subcategoryService) List(ctx context.Context) ([]entity.Subcategory, error) {
	subcategories, err := srv.subcategories.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list subcategories")
	}

	return subcategories, nil
}

func (srv *subcategoryService) Get(ctx context.Context, id int64) (*entity.Subcategory, error) {
	subcategory, err := srv.subcategories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubcategoryNotFound) {
			return nil, domainerrors.ErrSubcategoryNotFound
		}

		return nil, errors.Wrap(err, "find subcategory")
	}

	return subcategory, nil
}

func (srv *subcategoryService) Create(ctx context.Context, input SubcategoryInput) (*entity.Subcategory, error) {
	if err := srv.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	subcategory := entity.Subcategory{CategoryID: input.CategoryID, Name: input.Name}
	if err := srv.subcategories.Create(ctx, &subcategory); err != nil {
		return nil, errors.Wrap(err, "create subcategory")
	}
	srv.logger.Info("subcategory created", "subcategoryID", subcategory.ID)

	return &subcategory, nil
}

func (srv *subcategoryService) Update(ctx context.Context, id int64, input SubcategoryInput) (*entity.Subcategory, error) {
	if err := srv.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	subcategory := entity.Subcategory{ID: id, CategoryID: input.CategoryID, Name: input.Name}
	if err := srv.subcategories.Update(ctx, &subcategory); err != nil {
		if errors.Is(err, repository.ErrSubcategoryNotFound) {
			return nil, domainerrors.ErrSubcategoryNotFound
		}

		return nil, errors.Wrap(err, "update subcategory")
	}

	return &subcategory, nil
}

func (srv *subcategoryService) Delete(ctx context.Context, id int64) error {
	if err := srv.subcategories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSubcategoryNotFound) {
			return domainerrors.ErrSubcategoryNotFound
		}

		return errors.Wrap(err, "delete subcategory")
	}

	return nil
}

func (srv *subcategoryService) checkCategory(ctx context.Context, categoryID int64) error {
	if _, err := srv.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.BadRequest("category does not exist")
		}

		return errors.Wrap(err, "check category")
	}

	return nil
}

// cityService implements the CityUsecase interface.
type cityService struct {
	cities repository.CityRepository
	logger *slog.Logger
}

// NewCityService is the constructor for cityService.
func NewCityService(cities repository.CityRepository, logger *slog.Logger) CityUsecase {
	return &cityService{cities: cities, logger: logger}
}

func (srv *cityService) List(ctx context.Context) ([]entity.City, error) {
	cities, err := srv.cities.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list cities")
	}

	return cities, nil
}

func (srv *cityService) Get(ctx context.Context, id int64) (*entity.City, error) {
	city, err := srv.cities.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "find city")
	}

	return city, nil
}

func (srv *cityService) Create(ctx context.Context, input NameInput) (*entity.City, error) {
	city := entity.City{Name: input.Name}
	if err := srv.cities.Create(ctx, &city); err != nil {
		return nil, errors.Wrap(err, "create city")
	}
	srv.logger.Info("city created", "cityID", city.ID)

	return &city, nil
}

func (srv *cityService) Update(ctx context.Context, id int64, input NameInput) (*entity.City, error) {
	city := entity.City{ID: id, Name: input.Name}
	if err := srv.cities.Update(ctx, &city); err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "update city")
	}

	return &city, nil
}

func (srv *cityService) Delete(ctx context.Context, id int64) error {
	if err := srv.cities.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return domainerrors.ErrCityNotFound
		}

		return errors.Wrap(err, "delete city")
	}

	return nil
}
