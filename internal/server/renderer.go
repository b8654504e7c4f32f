package server

import (
	"embed"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/nguyentranbao-ct/catalog-console/internal/form"
	"github.com/nguyentranbao-ct/catalog-console/internal/render"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
	"github.com/nguyentranbao-ct/catalog-console/pkg/tmplx"
)

//go:embed templates/*.html
var templatesFS embed.FS

const consolePage = "console.html"

type sortHeader struct {
	Column    string
	Indicator string
}

type productFields struct {
	Form       form.ProductForm
	Categories []form.CategoryOption
}

// pageData is everything the console page template reads.
type pageData struct {
	usecase.Snapshot
	Modal         usecase.ModalKind
	Notifications []usecase.Notification
}

// PageRenderer renders the embedded console templates for echo.
type PageRenderer struct {
	tmpl *tmplx.Template
}

func NewPageRenderer() (*PageRenderer, error) {
	tmpl, err := tmplx.ParseFS(templatesFS, []string{"templates/*.html"},
		tmplx.WithTemplateFunc("escape", render.EscapeHTML),
		tmplx.WithTemplateFunc("sortHeader", func(column string, indicators map[string]string) sortHeader {
			return sortHeader{Column: column, Indicator: indicators[column]}
		}),
		tmplx.WithTemplateFunc("productFields", func(f form.ProductForm, categories []form.CategoryOption) productFields {
			return productFields{Form: f, Categories: categories}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("parse console templates: %w", err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

func (r *PageRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.tmpl.RenderNamed(w, name, data)
}
