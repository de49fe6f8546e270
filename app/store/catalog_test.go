package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familycar/datastore/app/models"
)

func TestSaveCategoryReplacesInPlace(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Init())

	saved, err := s.SaveCategory(models.Category{ID: "Nissan", Name: "Nissan Motors"})
	require.NoError(t, err)
	assert.Equal(t, "Nissan", saved.ID)

	categories, err := s.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 3, "replace must not grow the collection")
	assert.Equal(t, "Nissan Motors", categories[1].Name, "record replaced at its position")
}

func TestSaveCategoryAppendsUnmatchedID(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Init())

	_, err := s.SaveCategory(models.Category{ID: "Honda", Name: "Honda"})
	require.NoError(t, err)

	categories, err := s.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, "Honda", categories[3].ID)
}

func TestSaveCategoryGeneratesID(t *testing.T) {
	s, _ := newTestStore(t)

	saved, err := s.SaveCategory(models.Category{Name: "Mazda"})
	require.NoError(t, err)
	assert.Equal(t, "cat_1", saved.ID)

	categories, err := s.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, saved, categories[0])
}

func TestDeleteCategory(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Init())

	removed, err := s.DeleteCategory("nonexistent")
	require.NoError(t, err)
	assert.False(t, removed)

	categories, err := s.Categories()
	require.NoError(t, err)
	assert.Len(t, categories, 3, "miss leaves the collection unchanged")

	removed, err = s.DeleteCategory("Toyota")
	require.NoError(t, err)
	assert.True(t, removed)

	categories, err = s.Categories()
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestProductRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	p := models.Product{
		ID:          "bmw_001",
		Name:        "BMW M3 E46",
		Price:       4200000,
		Category:    "BMW",
		Image:       "https://example.com/m3.jpg",
		Description: "Straight-six icon.",
		Status:      models.StatusAvailable,
	}
	require.NoError(t, s.SaveProduct("bmw_001", p))

	products, err := s.Products()
	require.NoError(t, err)
	assert.Equal(t, p, products["bmw_001"])
}

func TestSaveProductOverwrites(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Init())

	p, err := s.Products()
	require.NoError(t, err)
	supra := p["toyota_001"]
	supra.Status = "sold"
	require.NoError(t, s.SaveProduct("toyota_001", supra))

	products, err := s.Products()
	require.NoError(t, err)
	assert.Equal(t, "sold", products["toyota_001"].Status)
	assert.Len(t, products, 5, "overwrite must not add a key")
}

func TestDeleteProduct(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Init())

	removed, err := s.DeleteProduct("nonexistent")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = s.DeleteProduct("nissan_002")
	require.NoError(t, err)
	assert.True(t, removed)

	products, err := s.Products()
	require.NoError(t, err)
	assert.Len(t, products, 4)
	assert.NotContains(t, products, "nissan_002")
}
