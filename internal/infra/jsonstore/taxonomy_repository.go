package jsonstore

import (
	"context"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
)

const (
	categoriesCollection    = "categories"
	subcategoriesCollection = "subcategories"
	citiesCollection        = "cities"
)

// The three taxonomy collections share the same flat id+fields shape, so the
// repositories delegate to small generic helpers parameterized by collection
// name, id accessors, and the matching not-found sentinel.

func listRecords[T any](store *Store, collection string) ([]T, error) {
	return Read[T](store, collection), nil
}

func findRecord[T any](store *Store, collection string, match func(T) bool, notFound error) (*T, error) {
	for _, record := range Read[T](store, collection) {
		if match(record) {
			return &record, nil
		}
	}

	return nil, notFound
}

func createRecord[T any](store *Store, collection string, record *T, getID func(T) int64, setID func(*T, int64)) error {
	return Update(store, collection, func(records []T) ([]T, error) {
		var maxID int64
		for _, existing := range records {
			if getID(existing) > maxID {
				maxID = getID(existing)
			}
		}
		setID(record, maxID+1)

		return append(records, *record), nil
	})
}

func updateRecord[T any](store *Store, collection string, record *T, getID func(T) int64, notFound error) error {
	return Update(store, collection, func(records []T) ([]T, error) {
		for i, existing := range records {
			if getID(existing) == getID(*record) {
				records[i] = *record

				return records, nil
			}
		}

		return nil, notFound
	})
}

func deleteRecord[T any](store *Store, collection string, id int64, getID func(T) int64, notFound error) error {
	return Update(store, collection, func(records []T) ([]T, error) {
		filtered := make([]T, 0, len(records))
		for _, record := range records {
			if getID(record) != id {
				filtered = append(filtered, record)
			}
		}
		if len(filtered) == len(records) {
			return nil, notFound
		}

		return filtered, nil
	})
}

// categoryRepository implements repository.CategoryRepository over categories.json.
type categoryRepository struct {
	store *Store
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(store *Store) repository.CategoryRepository {
	return &categoryRepository{store: store}
}

func (repo *categoryRepository) List(_ context.Context) ([]entity.Category, error) {
	return listRecords[entity.Category](repo.store, categoriesCollection)
}

func (repo *categoryRepository) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	return findRecord(repo.store, categoriesCollection,
		func(c entity.Category) bool { return c.ID == id }, repository.ErrCategoryNotFound)
}

func (repo *categoryRepository) Create(_ context.Context, category *entity.Category) error {
	return createRecord(repo.store, categoriesCollection, category,
		func(c entity.Category) int64 { return c.ID },
		func(c *entity.Category, id int64) { c.ID = id })
}

func (repo *categoryRepository) Update(_ context.Context, category *entity.Category) error {
	return updateRecord(repo.store, categoriesCollection, category,
		func(c entity.Category) int64 { return c.ID }, repository.ErrCategoryNotFound)
}

func (repo *categoryRepository) Delete(_ context.Context, id int64) error {
	return deleteRecord(repo.store, categoriesCollection, id,
		func(c entity.Category) int64 { return c.ID }, repository.ErrCategoryNotFound)
}

// subcategoryRepository implements repository.SubcategoryRepository over subcategories.json.
type subcategoryRepository struct {
	store *Store
}

// NewSubcategoryRepository is the constructor for subcategoryRepository.
func NewSubcategoryRepository(store *Store) repository.SubcategoryRepository {
	return &subcategoryRepository{store: store}
}

func (repo *subcategoryRepository) List(_ context.Context) ([]entity.Subcategory, error) {
	return listRecords[entity.Subcategory](repo.store, subcategoriesCollection)
}

func (repo *subcategoryRepository) FindByID(_ context.Context, id int64) (*entity.Subcategory, error) {
	return findRecord(repo.store, subcategoriesCollection,
		func(s entity.Subcategory) bool { return s.ID == id }, repository.ErrSubcategoryNotFound)
}

func (repo *subcategoryRepository) Create(_ context.Context, subcategory *entity.Subcategory) error {
	return createRecord(repo.store, subcategoriesCollection, subcategory,
		func(s entity.Subcategory) int64 { return s.ID },
		func(s *entity.Subcategory, id int64) { s.ID = id })
}

func (repo *subcategoryRepository) Update(_ context.Context, subcategory *entity.Subcategory) error {
	return updateRecord(repo.store, subcategoriesCollection, subcategory,
		func(s entity.Subcategory) int64 { return s.ID }, repository.ErrSubcategoryNotFound)
}

func (repo *subcategoryRepository) Delete(_ context.Context, id int64) error {
	return deleteRecord(repo.store, subcategoriesCollection, id,
		func(s entity.Subcategory) int64 { return s.ID }, repository.ErrSubcategoryNotFound)
}

// cityRepository implements repository.CityRepository over cities.json.
type cityRepository struct {
	store *Store
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(store *Store) repository.CityRepository {
	return &cityRepository{store: store}
}

func (repo *cityRepository) List(_ context.Context) ([]entity.City, error) {
	return listRecords[entity.City](repo.store, citiesCollection)
}

func (repo *cityRepository) FindByID(_ context.Context, id int64) (*entity.City, error) {
	return findRecord(repo.store, citiesCollection,
		func(c entity.City) bool { return c.ID == id }, repository.ErrCityNotFound)
}

func (repo *cityRepository) Create(_ context.Context, city *entity.City) error {
	return createRecord(repo.store, citiesCollection, city,
		func(c entity.City) int64 { return c.ID },
		func(c *entity.City, id int64) { c.ID = id })
}

func (repo *cityRepository) Update(_ context.Context, city *entity.City) error {
	return updateRecord(repo.store, citiesCollection, city,
		func(c entity.City) int64 { return c.ID }, repository.ErrCityNotFound)
}

func (repo *cityRepository) Delete(_ context.Context, id int64) error {
	return deleteRecord(repo.store, citiesCollection, id,
		func(c entity.City) int64 { return c.ID }, repository.ErrCityNotFound)
}
