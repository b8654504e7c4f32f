package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

func TestLoadDefaultCategories(t *testing.T) {
	categories, err := LoadDefaultCategories()
	require.NoError(t, err)
	require.Len(t, categories, 5)
	assert.Equal(t, CategoryOption{ID: 1, Name: "Clothes"}, categories[0])
	assert.Equal(t, "5", categories[4].Value())
	assert.Equal(t, "5 - Miscellaneous", categories[4].Label())
}

func TestCategoryOptions(t *testing.T) {
	defaults := []CategoryOption{{ID: 1, Name: "Clothes"}, {ID: 2, Name: "Electronics"}}

	t.Run("no product", func(t *testing.T) {
		assert.Equal(t, defaults, CategoryOptions(defaults, nil))
	})

	t.Run("known category", func(t *testing.T) {
		p := &models.Product{Category: &models.Category{ID: 2, Name: "Electronics"}}
		assert.Equal(t, defaults, CategoryOptions(defaults, p))
	})

	t.Run("unknown category is inserted first", func(t *testing.T) {
		p := &models.Product{Category: &models.Category{ID: 42, Name: "Toys"}}
		got := CategoryOptions(defaults, p)
		require.Len(t, got, 3)
		assert.Equal(t, "42 - Toys", got[0].Label())
		assert.Len(t, defaults, 2)
	})

	t.Run("unnamed unknown category", func(t *testing.T) {
		p := &models.Product{Category: &models.Category{ID: 9}}
		assert.Equal(t, "9 - Unknown", CategoryOptions(defaults, p)[0].Label())
	})
}
