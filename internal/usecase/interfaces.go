package usecase

import (
	"context"
	"io"

	"github.com/nguyentranbao-ct/catalog-console/internal/catalog"
	"github.com/nguyentranbao-ct/catalog-console/internal/form"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/render"
)

// ConsoleUsecase owns the console state. Events are applied one at a time.
type ConsoleUsecase interface {
	// BeginLoad shows the loading state ahead of a Load started elsewhere.
	BeginLoad()
	Load(ctx context.Context) error
	Search(term string)
	SetItemsPerPage(size int) error
	ToggleSort(column string) error
	// GoToPage, PrevPage and NextPage report false when the target page is
	// out of range and nothing changed.
	GoToPage(page int) bool
	PrevPage() bool
	NextPage() bool
	OpenDetail(id int64) error
	CloseModal()
	BeginCreate()
	BeginEdit() error
	// SubmitCreate and SubmitEdit leave showing the outcome to the caller:
	// the result carries the notification for both success and failure.
	SubmitCreate(ctx context.Context, f form.ProductForm) (WriteResult, error)
	SubmitEdit(ctx context.Context, f form.ProductForm) (WriteResult, error)
	Snapshot() Snapshot
	// ExportCSV writes the visible page and returns its number.
	ExportCSV(w io.Writer) (int, error)
}

type ModalKind string

const (
	ModalNone   ModalKind = ""
	ModalDetail ModalKind = "detail"
	ModalEdit   ModalKind = "edit"
	ModalCreate ModalKind = "create"
)

type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}

// WriteResult is the outcome of a create or update. Product is nil on failure.
type WriteResult struct {
	Product      *models.Product
	Notification Notification
}

// View is what the console needs from the presentation layer.
type View interface {
	ShowModal(kind ModalKind)
	HideModal()
	SetLoading(loading bool)
}

// Snapshot is the read model of one console rendering.
type Snapshot struct {
	TotalCount       int                   `json:"total_count"`
	MatchedCount     int                   `json:"matched_count"`
	Rows             []render.Row          `json:"rows"`
	Pagination       catalog.Pagination    `json:"pagination"`
	Sort             catalog.SortState     `json:"sort"`
	SortIndicators   map[string]string     `json:"sort_indicators"`
	SearchTerm       string                `json:"search_term"`
	ItemsPerPage     int                   `json:"items_per_page"`
	PageSizes        []int                 `json:"page_sizes"`
	Detail           *render.Detail        `json:"detail,omitempty"`
	CreateForm       form.ProductForm      `json:"create_form"`
	EditForm         form.ProductForm      `json:"edit_form"`
	CreateCategories []form.CategoryOption `json:"create_categories"`
	EditCategories   []form.CategoryOption `json:"edit_categories"`
	Loading          bool                  `json:"loading"`
	LoadError        string                `json:"load_error,omitempty"`
}
