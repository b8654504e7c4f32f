package catalog

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

func product(id int64, title string, price string) models.Product {
	return models.Product{
		ID:    id,
		Title: title,
		Price: decimal.RequireFromString(price),
	}
}

func ids(products []models.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func sampleProducts() []models.Product {
	return []models.Product{
		product(3, "Classic Red Shirt", "25"),
		product(1, "blue jeans", "40.5"),
		product(7, "Red Sneakers", "89.99"),
		product(2, "Wooden Chair", "12"),
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	products := sampleProducts()

	t.Run("case insensitive title match", func(t *testing.T) {
		got := Filter(products, "RED")
		assert.Equal(t, []int64{3, 7}, ids(got))
	})

	t.Run("blank term keeps order", func(t *testing.T) {
		assert.Equal(t, ids(products), ids(Filter(products, "")))
		assert.Equal(t, ids(products), ids(Filter(products, "   ")))
	})

	t.Run("term is trimmed", func(t *testing.T) {
		assert.Equal(t, []int64{2}, ids(Filter(products, "  chair ")))
	})

	t.Run("only title is searched", func(t *testing.T) {
		withDesc := append([]models.Product(nil), products...)
		withDesc[0].Description = "chair"
		assert.Equal(t, []int64{2}, ids(Filter(withDesc, "chair")))
	})

	t.Run("result is a fresh slice", func(t *testing.T) {
		got := Filter(products, "")
		got[0].Title = "changed"
		assert.Equal(t, "Classic Red Shirt", products[0].Title)
	})
}

func TestSort(t *testing.T) {
	t.Parallel()
	products := sampleProducts()

	t.Run("price ascending then descending reverses", func(t *testing.T) {
		asc := Sort(products, SortState{Column: SortPrice, Direction: Asc})
		desc := Sort(products, SortState{Column: SortPrice, Direction: Desc})
		assert.Equal(t, []int64{2, 3, 1, 7}, ids(asc))
		assert.Equal(t, []int64{7, 1, 3, 2}, ids(desc))
	})

	t.Run("title ignores case", func(t *testing.T) {
		got := Sort(products, SortState{Column: SortTitle, Direction: Asc})
		assert.Equal(t, []int64{1, 3, 7, 2}, ids(got))
	})

	t.Run("id is numeric", func(t *testing.T) {
		withTen := append(append([]models.Product(nil), products...), product(10, "x", "1"))
		got := Sort(withTen, SortState{Column: SortID, Direction: Asc})
		assert.Equal(t, []int64{1, 2, 3, 7, 10}, ids(got))
	})

	t.Run("ties keep relative order", func(t *testing.T) {
		ties := []models.Product{
			product(1, "a", "5"),
			product(2, "b", "1"),
			product(3, "c", "5"),
			product(4, "d", "5"),
		}
		assert.Equal(t, []int64{2, 1, 3, 4}, ids(Sort(ties, SortState{Column: SortPrice, Direction: Asc})))
		assert.Equal(t, []int64{1, 3, 4, 2}, ids(Sort(ties, SortState{Column: SortPrice, Direction: Desc})))
	})

	t.Run("inactive state keeps order", func(t *testing.T) {
		assert.Equal(t, ids(products), ids(Sort(products, SortState{})))
	})
}

func TestSortState(t *testing.T) {
	t.Parallel()
	var s SortState

	s = s.Toggle(SortPrice)
	assert.Equal(t, SortState{Column: SortPrice, Direction: Asc}, s)
	s = s.Toggle(SortPrice)
	assert.Equal(t, SortState{Column: SortPrice, Direction: Desc}, s)
	s = s.Toggle(SortPrice)
	assert.Equal(t, Asc, s.Direction)

	s = s.Toggle(SortPrice).Toggle(SortTitle)
	assert.Equal(t, SortState{Column: SortTitle, Direction: Asc}, s)

	assert.Equal(t, IndicatorAsc, s.Indicator(SortTitle))
	assert.Equal(t, IndicatorUnsorted, s.Indicator(SortID))
	assert.Equal(t, IndicatorDesc, s.Toggle(SortTitle).Indicator(SortTitle))
}

func TestParseSortColumn(t *testing.T) {
	t.Parallel()
	col, err := ParseSortColumn(" Price ")
	require.NoError(t, err)
	assert.Equal(t, SortPrice, col)

	_, err = ParseSortColumn("description")
	assert.ErrorIs(t, err, models.ErrUnknownSortColumn)
}

func TestPaginate(t *testing.T) {
	t.Parallel()
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("never more than size", func(t *testing.T) {
		for page := 1; page <= 4; page++ {
			assert.LessOrEqual(t, len(Paginate(items, page, 10)), 10)
		}
		assert.Len(t, Paginate(items, 3, 10), 5)
	})

	t.Run("out of range is empty", func(t *testing.T) {
		assert.Empty(t, Paginate(items, 4, 10))
		assert.Empty(t, Paginate(items, 0, 10))
	})

	t.Run("pages partition the list", func(t *testing.T) {
		even := items[:20]
		var seen []int
		for page := 1; page <= TotalPages(len(even), 5); page++ {
			seen = append(seen, Paginate(even, page, 5)...)
		}
		assert.Equal(t, even, seen)
	})
}

func TestTotalPages(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 2, TotalPages(20, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
}

func TestPageWindow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		current, total int
		want           []int
	}{
		{1, 3, []int{1, 2, 3}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{2, 10, []int{1, 2, 3, 4, 5}},
		{5, 10, []int{3, 4, 5, 6, 7}},
		{9, 10, []int{6, 7, 8, 9, 10}},
		{10, 10, []int{6, 7, 8, 9, 10}},
		{1, 1, []int{1}},
		{1, 0, nil},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.current, tt.total), func(t *testing.T) {
			assert.Equal(t, tt.want, PageWindow(tt.current, tt.total))
		})
	}
}

func TestPagination(t *testing.T) {
	t.Parallel()
	p := NewPagination(1, TotalPages(25, 10))
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, p.Pages)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)
	assert.True(t, p.Visible())

	last := NewPagination(3, 3)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)

	assert.False(t, NewPagination(1, 1).Visible())
}

func TestStore(t *testing.T) {
	t.Parallel()
	s := NewStore()
	s.Reset(sampleProducts())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, ids(s.All()), ids(s.Filtered()))

	s.Rebuild("red", SortState{Column: SortPrice, Direction: Desc})
	assert.Equal(t, []int64{7, 3}, ids(s.Filtered()))

	updated := product(7, "Blue Sneakers", "70")
	require.True(t, s.Replace(updated))
	assert.False(t, s.Replace(product(99, "ghost", "1")))
	s.Rebuild("red", SortState{Column: SortPrice, Direction: Desc})
	assert.Equal(t, []int64{3}, ids(s.Filtered()))

	got, ok := s.Find(7)
	require.True(t, ok)
	assert.Equal(t, "Blue Sneakers", got.Title)

	s.Prepend(product(50, "New Red Hat", "5"))
	assert.Equal(t, int64(50), s.All()[0].ID)
	assert.Equal(t, 5, s.Len())
}
