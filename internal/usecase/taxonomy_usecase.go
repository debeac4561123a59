package usecase

import (
	"context"

	"skillswap/internal/domain/entity"
)

// NameInput is the writable payload shared by categories and cities.
type NameInput struct {
	Name string `json:"name" validate:"required"`
}

// SubcategoryInput is the writable payload of a subcategory.
type SubcategoryInput struct {
	CategoryID int64  `json:"categoryId" validate:"required"`
	Name       string `json:"name" validate:"required"`
}

// CategoryUsecase defines CRUD over skill categories.
type CategoryUsecase interface {
	List(ctx context.Context) ([]entity.Category, error)
	Get(ctx context.Context, id int64) (*entity.Category, error)
	Create(ctx context.Context, input NameInput) (*entity.Category, error)
	Update(ctx context.Context, id int64, input NameInput) (*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}

// SubcategoryUsecase defines CRUD over skill subcategories. Create and Update
// require the parent category to exist.
type SubcategoryUsecase interface {
	List(ctx context.Context) ([]entity.Subcategory, error)
	Get(ctx context.Context, id int64) (*entity.Subcategory, error)
	Create(ctx context.Context, input SubcategoryInput) (*entity.Subcategory, error)
	Update(ctx context.Context, id int64, input SubcategoryInput) (*entity.Subcategory, error)
	Delete(ctx context.Context, id int64) error
}

// CityUsecase defines CRUD over cities.
type CityUsecase interface {
	List(ctx context.Context) ([]entity.City, error)
	Get(ctx context.Context, id int64) (*entity.City, error)
	Create(ctx context.Context, input NameInput) (*entity.City, error)
	Update(ctx context.Context, id int64, input NameInput) (*entity.City, error)
	Delete(ctx context.Context, id int64) error
}
