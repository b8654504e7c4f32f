package catalog

import (
	"strings"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

// Filter returns the products whose title contains term, ignoring case.
// A blank term returns a copy of the full list in its original order.
func Filter(products []models.Product, term string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]models.Product(nil), products...)
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), term) {
			out = append(out, p)
		}
	}
	return out
}
