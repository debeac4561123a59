package usecase_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/config"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/infra/jsonstore"
	"skillswap/internal/usecase"
)

func newTaxonomyFixture(t *testing.T) (usecase.CategoryUsecase, usecase.SubcategoryUsecase, usecase.CityUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Path = t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := jsonstore.New(cfg, logger)
	require.NoError(t, err)

	categories := jsonstore.NewCategoryRepository(store)
	subcategories := jsonstore.NewSubcategoryRepository(store)
	cities := jsonstore.NewCityRepository(store)

	return usecase.NewCategoryService(categories, logger),
		usecase.NewSubcategoryService(subcategories, categories, logger),
		usecase.NewCityService(cities, logger)
}

func TestCategoryService_CRUD(t *testing.T) {
	categoryUC, _, _ := newTaxonomyFixture(t)
	ctx := context.Background()

	created, err := categoryUC.Create(ctx, usecase.NameInput{Name: "Music"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	updated, err := categoryUC.Update(ctx, created.ID, usecase.NameInput{Name: "Arts"})
	require.NoError(t, err)
	assert.Equal(t, "Arts", updated.Name)

	list, err := categoryUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, categoryUC.Delete(ctx, created.ID))

	_, err = categoryUC.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestSubcategoryService_RequiresExistingCategory(t *testing.T) {
	categoryUC, subcategoryUC, _ := newTaxonomyFixture(t)
	ctx := context.Background()

	_, err := subcategoryUC.Create(ctx, usecase.SubcategoryInput{CategoryID: 1, Name: "Guitar"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())

	_, err = categoryUC.Create(ctx, usecase.NameInput{Name: "Music"})
	require.NoError(t, err)

	subcategory, err := subcategoryUC.Create(ctx, usecase.SubcategoryInput{CategoryID: 1, Name: "Guitar"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), subcategory.ID)
}

func TestCityService_GetUnknown(t *testing.T) {
	_, _, cityUC := newTaxonomyFixture(t)

	_, err := cityUC.Get(context.Background(), 9)
	assert.ErrorIs(t, err, domainerrors.ErrCityNotFound)
}
