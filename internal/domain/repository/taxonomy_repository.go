package repository

import (
	"context"
	"errors"

	"skillswap/internal/domain/entity"
)

// Not-found sentinels for the taxonomy collections.
var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrCityNotFound        = errors.New("city not found")
)

// CategoryRepository defines the operations for category persistence.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}

// SubcategoryRepository defines the operations for subcategory persistence.
type SubcategoryRepository interface {
	List(ctx context.Context) ([]entity.Subcategory, error)
	FindByID(ctx context.Context, id int64) (*entity.Subcategory, error)
	Create(ctx context.Context, subcategory *entity.Subcategory) error
	Update(ctx context.Context, subcategory *entity.Subcategory) error
	Delete(ctx context.Context, id int64) error
}

// CityRepository defines the operations for city persistence.
type CityRepository interface {
	List(ctx context.Context) ([]entity.City, error)
	FindByID(ctx context.Context, id int64) (*entity.City, error)
	Create(ctx context.Context, city *entity.City) error
	Update(ctx context.Context, city *entity.City) error
	Delete(ctx context.Context, id int64) error
}
