package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

const (
	ContentType = "text/csv;charset=utf-8"

	byteOrderMark = "\ufeff"
)

var header = []string{"ID", "Title", "Price", "Category", "Description", "Images"}

// WriteCSV writes products as a BOM-prefixed CSV document. Text columns are
// always quoted so spreadsheet tools never reinterpret them.
func WriteCSV(w io.Writer, products []models.Product) error {
	lines := make([]string, 0, len(products)+1)
	lines = append(lines, strings.Join(header, ","))
	for _, p := range products {
		lines = append(lines, strings.Join([]string{
			strconv.FormatInt(p.ID, 10),
			quote(p.Title),
			p.Price.String(),
			quote(p.CategoryName("N/A")),
			quote(p.Description),
			quote(strings.Join(p.Images, ";")),
		}, ","))
	}

	if _, err := io.WriteString(w, byteOrderMark+strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// FileName is the download name for a page export taken at now.
func FileName(page int, now time.Time) string {
	return fmt.Sprintf("products_page_%d_%d.csv", page, now.UnixMilli())
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
