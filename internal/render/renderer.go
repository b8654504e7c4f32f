package render

import (
	"strconv"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/pkg/util"
)

const (
	NotAvailable = "N/A"

	DefaultThumbnailFallback = "https://via.placeholder.com/50"
	DefaultDetailFallback    = "https://via.placeholder.com/200"
)

// Row is one table line. Text fields hold raw values; Escaped returns the
// copy that is safe to insert into markup.
type Row struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Category  string `json:"category"`
	Thumbnail string `json:"thumbnail"`
	Fallback  string `json:"fallback"`
	Tooltip   string `json:"tooltip"`
}

// Detail is the model of the product detail modal. Like Row it holds raw
// values until Escaped is called.
type Detail struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Price        string `json:"price"`
	Description  string `json:"description"`
	CategoryName string `json:"category_name"`
	CategoryID   string `json:"category_id"`
	Image        string `json:"image"`
	Fallback     string `json:"fallback"`
}

type Renderer struct {
	thumbnailFallback string
	detailFallback    string
}

func NewRenderer(thumbnailFallback, detailFallback string) *Renderer {
	if thumbnailFallback == "" {
		thumbnailFallback = DefaultThumbnailFallback
	}
	if detailFallback == "" {
		detailFallback = DefaultDetailFallback
	}
	return &Renderer{
		thumbnailFallback: thumbnailFallback,
		detailFallback:    detailFallback,
	}
}

func (r *Renderer) Rows(products []models.Product) []Row {
	return util.ConvertList(products, r.Row)
}

func (r *Renderer) Row(p models.Product) Row {
	return Row{
		ID:        p.ID,
		Title:     p.Title,
		Price:     FormatPrice(p),
		Category:  p.CategoryName(NotAvailable),
		Thumbnail: firstImage(p.Images, r.thumbnailFallback),
		Fallback:  r.thumbnailFallback,
		Tooltip:   p.Description,
	}
}

func (r Row) Escaped() Row {
	r.Title = EscapeHTML(r.Title)
	r.Price = EscapeHTML(r.Price)
	r.Category = EscapeHTML(r.Category)
	r.Thumbnail = EscapeHTML(r.Thumbnail)
	r.Fallback = EscapeHTML(r.Fallback)
	r.Tooltip = EscapeHTML(r.Tooltip)
	return r
}

// EscapedRows escapes every row for the HTML console.
func EscapedRows(rows []Row) []Row {
	return util.ConvertList(rows, Row.Escaped)
}

func (r *Renderer) Detail(p models.Product) Detail {
	categoryID := NotAvailable
	if p.Category != nil && p.Category.ID != 0 {
		categoryID = strconv.FormatInt(p.Category.ID, 10)
	}
	return Detail{
		ID:           p.ID,
		Title:        p.Title,
		Price:        FormatPrice(p),
		Description:  p.Description,
		CategoryName: p.CategoryName(NotAvailable),
		CategoryID:   categoryID,
		Image:        firstImage(p.Images, r.detailFallback),
		Fallback:     r.detailFallback,
	}
}

func (d Detail) Escaped() Detail {
	d.Title = EscapeHTML(d.Title)
	d.Price = EscapeHTML(d.Price)
	d.Description = EscapeHTML(d.Description)
	d.CategoryName = EscapeHTML(d.CategoryName)
	d.CategoryID = EscapeHTML(d.CategoryID)
	d.Image = EscapeHTML(d.Image)
	d.Fallback = EscapeHTML(d.Fallback)
	return d
}

// FormatPrice prints the raw price with a dollar sign and no rounding.
func FormatPrice(p models.Product) string {
	return "$" + p.Price.String()
}

func firstImage(images []string, fallback string) string {
	if len(images) == 0 {
		return fallback
	}
	if u := CleanImageURL(images[0]); u != "" {
		return u
	}
	return fallback
}
