package form

import (
	_ "embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

//go:embed default_categories.yaml
var defaultCategoriesData []byte

// CategoryOption is one entry of the category dropdown.
type CategoryOption struct {
	ID   int64  `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

func (o CategoryOption) Value() string {
	return strconv.FormatInt(o.ID, 10)
}

func (o CategoryOption) Label() string {
	return fmt.Sprintf("%d - %s", o.ID, o.Name)
}

func LoadDefaultCategories() ([]CategoryOption, error) {
	var categories []CategoryOption
	if err := yaml.Unmarshal(defaultCategoriesData, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default categories: %w", err)
	}
	return categories, nil
}

// CategoryOptions returns the dropdown entries for editing product. A
// category the defaults do not know is inserted first so the current value
// stays selectable.
func CategoryOptions(defaults []CategoryOption, product *models.Product) []CategoryOption {
	options := append([]CategoryOption(nil), defaults...)
	if product == nil || product.Category == nil || product.Category.ID == 0 {
		return options
	}
	for _, o := range options {
		if o.ID == product.Category.ID {
			return options
		}
	}
	name := product.Category.Name
	if name == "" {
		name = "Unknown"
	}
	return append([]CategoryOption{{ID: product.Category.ID, Name: name}}, options...)
}
