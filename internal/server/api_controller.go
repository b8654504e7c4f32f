package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nguyentranbao-ct/catalog-console/internal/form"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	pkgmdw "github.com/nguyentranbao-ct/catalog-console/internal/server/middleware"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
)

type (
	ConsoleRequest struct{}

	SearchRequest struct {
		Term string `json:"term"`
	}

	SortRequest struct {
		Column string `json:"column" validate:"required,oneof=id title price"`
	}

	PageRequest struct {
		Page int `json:"page" validate:"min=1"`
	}

	PageSizeRequest struct {
		Size int `json:"size" validate:"required,min=1"`
	}

	ProductRequest struct {
		RequestID   string          `header:"X-Request-Id" json:"-"`
		Title       string          `json:"title"`
		Price       decimal.Decimal `json:"price"`
		Description string          `json:"description"`
		CategoryID  int64           `json:"categoryId"`
		Images      []string        `json:"images" validate:"omitempty,urls"`
	}

	UpdateProductRequest struct {
		ID int64 `param:"id" validate:"required,min=1"`
		ProductRequest
	}
)

// Form converts the request into the same form the HTML console submits,
// so both surfaces share one validation path.
func (r ProductRequest) Form() form.ProductForm {
	f := form.ProductForm{
		Title:       r.Title,
		Description: r.Description,
		Images:      strings.Join(r.Images, ", "),
	}
	if !r.Price.IsZero() {
		f.Price = r.Price.String()
	}
	if r.CategoryID != 0 {
		f.CategoryID = strconv.FormatInt(r.CategoryID, 10)
	}
	return f
}

// APIController exposes the console as JSON under /api/v1.
type APIController interface {
	GetConsole(c echo.Context, req ConsoleRequest) (usecase.Snapshot, error)
	Search(c echo.Context, req SearchRequest) (usecase.Snapshot, error)
	ToggleSort(c echo.Context, req SortRequest) (usecase.Snapshot, error)
	GoToPage(c echo.Context, req PageRequest) (usecase.Snapshot, error)
	SetPageSize(c echo.Context, req PageSizeRequest) (usecase.Snapshot, error)
	CreateProduct(c echo.Context, req ProductRequest) (*pkgmdw.Response, error)
	UpdateProduct(c echo.Context, req UpdateProductRequest) (*models.Product, error)
}

type apiController struct {
	console usecase.ConsoleUsecase
	log     *zap.SugaredLogger
}

func NewAPIController(console usecase.ConsoleUsecase) APIController {
	return &apiController{
		console: console,
		log:     logger.MustNamed("api"),
	}
}

func (h *apiController) GetConsole(c echo.Context, req ConsoleRequest) (usecase.Snapshot, error) {
	return h.console.Snapshot(), nil
}

func (h *apiController) Search(c echo.Context, req SearchRequest) (usecase.Snapshot, error) {
	h.console.Search(req.Term)
	return h.console.Snapshot(), nil
}

func (h *apiController) ToggleSort(c echo.Context, req SortRequest) (usecase.Snapshot, error) {
	if err := h.console.ToggleSort(req.Column); err != nil {
		return usecase.Snapshot{}, err
	}
	return h.console.Snapshot(), nil
}

// GoToPage leaves the console untouched for out of range pages.
func (h *apiController) GoToPage(c echo.Context, req PageRequest) (usecase.Snapshot, error) {
	h.console.GoToPage(req.Page)
	return h.console.Snapshot(), nil
}

func (h *apiController) SetPageSize(c echo.Context, req PageSizeRequest) (usecase.Snapshot, error) {
	if err := h.console.SetItemsPerPage(req.Size); err != nil {
		return usecase.Snapshot{}, err
	}
	return h.console.Snapshot(), nil
}

func (h *apiController) CreateProduct(c echo.Context, req ProductRequest) (*pkgmdw.Response, error) {
	h.log.Infow("create product", "request_id", req.RequestID, "title", req.Title)
	res, err := h.console.SubmitCreate(c.Request().Context(), req.Form())
	if err != nil {
		h.log.Warnw("create product failed", "request_id", req.RequestID, "error", err)
		return nil, err
	}
	return &pkgmdw.Response{
		Status:  http.StatusCreated,
		Success: true,
		Data:    res.Product,
	}, nil
}

func (h *apiController) UpdateProduct(c echo.Context, req UpdateProductRequest) (*models.Product, error) {
	h.log.Infow("update product", "request_id", req.RequestID, "id", req.ID, "title", req.Title)
	if err := h.console.OpenDetail(req.ID); err != nil {
		return nil, err
	}
	res, err := h.console.SubmitEdit(c.Request().Context(), req.Form())
	if err != nil {
		h.log.Warnw("update product failed", "request_id", req.RequestID, "id", req.ID, "error", err)
		return nil, err
	}
	return res.Product, nil
}
