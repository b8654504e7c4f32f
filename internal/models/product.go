package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// the remote catalog speaks plain JSON numbers for prices
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a cached snapshot of a catalog record owned by the remote API.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    *Category       `json:"category,omitempty"`
	Images      []string        `json:"images"`
}

type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// CategoryName returns the category name or fallback when the product has none.
func (p Product) CategoryName(fallback string) string {
	if p.Category == nil || p.Category.Name == "" {
		return fallback
	}
	return p.Category.Name
}

// ProductPayload is the body of create and update requests.
type ProductPayload struct {
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"categoryId"`
	Images      []string        `json:"images"`
}
