package form

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

func validForm() ProductForm {
	return ProductForm{
		Title:       "  Desk Lamp ",
		Price:       "45.50",
		Description: " warm light \n",
		CategoryID:  "3",
		Images:      " https://i.imgur.com/a.jpeg , ,https://i.imgur.com/b.jpeg",
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	p := NewParser("")

	t.Run("valid form", func(t *testing.T) {
		payload, err := p.Parse(validForm())
		require.NoError(t, err)
		assert.Equal(t, "Desk Lamp", payload.Title)
		assert.True(t, decimal.RequireFromString("45.5").Equal(payload.Price))
		assert.Equal(t, "warm light", payload.Description)
		assert.Equal(t, int64(3), payload.CategoryID)
		assert.Equal(t, []string{"https://i.imgur.com/a.jpeg", "https://i.imgur.com/b.jpeg"}, payload.Images)
	})

	t.Run("empty images use placeholder", func(t *testing.T) {
		f := validForm()
		f.Images = " , "
		payload, err := p.Parse(f)
		require.NoError(t, err)
		assert.Equal(t, []string{DefaultPlaceholderImage}, payload.Images)
	})

	tests := []struct {
		name   string
		modify func(*ProductForm)
		want   error
	}{
		{"blank title", func(f *ProductForm) { f.Title = "   " }, models.ErrMissingRequiredFields},
		{"negative price", func(f *ProductForm) { f.Price = "-5" }, models.ErrPriceNotPositive},
		{"zero price", func(f *ProductForm) { f.Price = "0" }, models.ErrPriceNotPositive},
		{"price not a number", func(f *ProductForm) { f.Price = "cheap" }, models.ErrPriceNotPositive},
		{"missing price", func(f *ProductForm) { f.Price = "" }, models.ErrPriceNotPositive},
		{"missing category", func(f *ProductForm) { f.CategoryID = "" }, models.ErrInvalidCategory},
		{"zero category", func(f *ProductForm) { f.CategoryID = "0" }, models.ErrInvalidCategory},
		{"fractional category", func(f *ProductForm) { f.CategoryID = "1.5" }, models.ErrInvalidCategory},
		{"title checked before price", func(f *ProductForm) { f.Title = ""; f.Price = "-1" }, models.ErrMissingRequiredFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.modify(&f)
			_, err := p.Parse(f)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, models.IsValidationError(err))
		})
	}
}

func TestFromProduct(t *testing.T) {
	t.Parallel()
	f := FromProduct(models.Product{
		ID:          7,
		Title:       "Chair",
		Price:       decimal.RequireFromString("12.5"),
		Description: "oak",
		Category:    &models.Category{ID: 2, Name: "Furniture"},
		Images:      []string{"a.png", "b.png"},
	})
	assert.Equal(t, ProductForm{
		Title:       "Chair",
		Price:       "12.5",
		Description: "oak",
		CategoryID:  "2",
		Images:      "a.png, b.png",
	}, f)

	assert.Empty(t, FromProduct(models.Product{}).CategoryID)
}
