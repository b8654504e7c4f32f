package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

type SortColumn string

const (
	SortNone  SortColumn = ""
	SortID    SortColumn = "id"
	SortTitle SortColumn = "title"
	SortPrice SortColumn = "price"
)

// SortColumns lists the columns the table can be sorted by, in display order.
var SortColumns = []SortColumn{SortID, SortTitle, SortPrice}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseSortColumn validates a column name coming from the outside.
func ParseSortColumn(s string) (SortColumn, error) {
	col := SortColumn(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(SortColumns, col) {
		return SortNone, fmt.Errorf("%w: %q", models.ErrUnknownSortColumn, s)
	}
	return col, nil
}

// SortState is the active sort column and direction. The zero value is unsorted.
type SortState struct {
	Column    SortColumn `json:"column,omitempty"`
	Direction Direction  `json:"direction,omitempty"`
}

// Toggle flips the direction when column is already active, otherwise it
// activates column in ascending order.
func (s SortState) Toggle(column SortColumn) SortState {
	if s.Column == column {
		if s.Direction == Asc {
			return SortState{Column: column, Direction: Desc}
		}
		return SortState{Column: column, Direction: Asc}
	}
	return SortState{Column: column, Direction: Asc}
}

func (s SortState) Active() bool {
	return s.Column != SortNone
}

const (
	IndicatorAsc      = "bi bi-sort-down"
	IndicatorDesc     = "bi bi-sort-up"
	IndicatorUnsorted = "bi bi-arrow-down-up"
)

// Indicator returns the glyph class shown next to column's header.
func (s SortState) Indicator(column SortColumn) string {
	if s.Column != column {
		return IndicatorUnsorted
	}
	if s.Direction == Desc {
		return IndicatorDesc
	}
	return IndicatorAsc
}

// Sort returns a stably sorted copy of products. An inactive state returns
// the input order unchanged.
func Sort(products []models.Product, state SortState) []models.Product {
	out := append([]models.Product(nil), products...)
	if !state.Active() {
		return out
	}

	compare := comparator(state.Column)
	if state.Direction == Desc {
		asc := compare
		compare = func(a, b models.Product) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, compare)
	return out
}

func comparator(column SortColumn) func(a, b models.Product) int {
	switch column {
	case SortTitle:
		return func(a, b models.Product) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case SortPrice:
		return func(a, b models.Product) int {
			return a.Price.Cmp(b.Price)
		}
	default:
		return func(a, b models.Product) int {
			return cmp.Compare(a.ID, b.ID)
		}
	}
}
