package form

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

const DefaultPlaceholderImage = "https://placehold.co/600x400"

// ProductForm holds the raw create/edit form values as typed by the user.
type ProductForm struct {
	Title       string `form:"title" json:"title"`
	Price       string `form:"price" json:"price"`
	Description string `form:"description" json:"description"`
	CategoryID  string `form:"category_id" json:"category_id"`
	Images      string `form:"images" json:"images"`
}

// Parser validates forms and turns them into API payloads.
type Parser struct {
	placeholderImage string
}

func NewParser(placeholderImage string) *Parser {
	if placeholderImage == "" {
		placeholderImage = DefaultPlaceholderImage
	}
	return &Parser{placeholderImage: placeholderImage}
}

// Parse checks title, price and category in that order and returns the first
// violation as a *models.ValidationError.
func (p *Parser) Parse(f ProductForm) (models.ProductPayload, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return models.ProductPayload{}, models.ErrMissingRequiredFields
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil || !price.IsPositive() {
		return models.ProductPayload{}, models.ErrPriceNotPositive
	}

	categoryID, err := strconv.ParseInt(strings.TrimSpace(f.CategoryID), 10, 64)
	if err != nil || categoryID <= 0 {
		return models.ProductPayload{}, models.ErrInvalidCategory
	}

	return models.ProductPayload{
		Title:       title,
		Price:       price,
		Description: strings.TrimSpace(f.Description),
		CategoryID:  categoryID,
		Images:      p.images(f.Images),
	}, nil
}

func (p *Parser) images(raw string) []string {
	var images []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			images = append(images, s)
		}
	}
	if len(images) == 0 {
		return []string{p.placeholderImage}
	}
	return images
}

// FromProduct pre-fills an edit form.
func FromProduct(product models.Product) ProductForm {
	categoryID := ""
	if product.Category != nil && product.Category.ID != 0 {
		categoryID = strconv.FormatInt(product.Category.ID, 10)
	}
	return ProductForm{
		Title:       product.Title,
		Price:       product.Price.String(),
		Description: product.Description,
		CategoryID:  categoryID,
		Images:      strings.Join(product.Images, ", "),
	}
}
