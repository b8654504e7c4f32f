package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nguyentranbao-ct/catalog-console/internal/export"
	"github.com/nguyentranbao-ct/catalog-console/internal/form"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/render"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
	"github.com/nguyentranbao-ct/catalog-console/pkg/util"
)

// Controller serves the HTML console. Every state change answers with a
// redirect to the console page.
type Controller interface {
	Index(c echo.Context) error
	Search(c echo.Context) error
	SetPageSize(c echo.Context) error
	ToggleSort(c echo.Context) error
	GoToPage(c echo.Context) error
	PrevPage(c echo.Context) error
	NextPage(c echo.Context) error
	OpenDetail(c echo.Context) error
	OpenEdit(c echo.Context) error
	OpenCreate(c echo.Context) error
	CloseModal(c echo.Context) error
	SubmitCreate(c echo.Context) error
	SubmitEdit(c echo.Context) error
	ExportCSV(c echo.Context) error
	Health(c echo.Context) error
}

type controller struct {
	console usecase.ConsoleUsecase
	view    *ConsoleView
	now     func() time.Time
}

func NewController(console usecase.ConsoleUsecase, view *ConsoleView) Controller {
	return &controller{
		console: console,
		view:    view,
		now:     time.Now,
	}
}

func (h *controller) Index(c echo.Context) error {
	data := pageData{
		Snapshot:      h.console.Snapshot(),
		Modal:         h.view.Modal(),
		Notifications: h.view.TakeNotifications(),
	}
	data.Loading = data.Loading || h.view.Loading()
	data.Rows = render.EscapedRows(data.Rows)
	if data.Detail != nil {
		data.Detail = util.Ptr(data.Detail.Escaped())
	}
	return c.Render(http.StatusOK, consolePage, data)
}

func (h *controller) Search(c echo.Context) error {
	h.console.Search(c.QueryParam("q"))
	return backToConsole(c)
}

func (h *controller) SetPageSize(c echo.Context) error {
	size, err := strconv.Atoi(c.FormValue("size"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page size")
	}
	if err := h.console.SetItemsPerPage(size); err != nil {
		return err
	}
	return backToConsole(c)
}

func (h *controller) ToggleSort(c echo.Context) error {
	if err := h.console.ToggleSort(c.Param("column")); err != nil {
		return err
	}
	return backToConsole(c)
}

func (h *controller) GoToPage(c echo.Context) error {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	h.console.GoToPage(page)
	return backToConsole(c)
}

func (h *controller) PrevPage(c echo.Context) error {
	h.console.PrevPage()
	return backToConsole(c)
}

func (h *controller) NextPage(c echo.Context) error {
	h.console.NextPage()
	return backToConsole(c)
}

func (h *controller) OpenDetail(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	if err := h.console.OpenDetail(id); err != nil {
		return err
	}
	return backToConsole(c)
}

func (h *controller) OpenEdit(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	if err := h.console.OpenDetail(id); err != nil {
		return err
	}
	if err := h.console.BeginEdit(); err != nil {
		return err
	}
	return backToConsole(c)
}

func (h *controller) OpenCreate(c echo.Context) error {
	h.console.BeginCreate()
	return backToConsole(c)
}

func (h *controller) CloseModal(c echo.Context) error {
	h.console.CloseModal()
	return backToConsole(c)
}

func (h *controller) SubmitCreate(c echo.Context) error {
	var f form.ProductForm
	if err := c.Bind(&f); err != nil {
		return err
	}
	res, err := h.console.SubmitCreate(c.Request().Context(), f)
	h.notify(res.Notification)
	if err != nil && !notified(err) {
		return err
	}
	return backToConsole(c)
}

func (h *controller) SubmitEdit(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	if detail := h.console.Snapshot().Detail; detail == nil || detail.ID != id {
		return echo.NewHTTPError(http.StatusConflict, fmt.Sprintf("product %d is not open for editing", id))
	}

	var f form.ProductForm
	if err := c.Bind(&f); err != nil {
		return err
	}
	res, err := h.console.SubmitEdit(c.Request().Context(), f)
	h.notify(res.Notification)
	if err != nil && !notified(err) {
		return err
	}
	return backToConsole(c)
}

func (h *controller) ExportCSV(c echo.Context) error {
	var buf bytes.Buffer
	page, err := h.console.ExportCSV(&buf)
	if err != nil {
		return err
	}
	filename := export.FileName(page, h.now())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "catalog-console",
	})
}

func backToConsole(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}

func productID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	return id, nil
}

func (h *controller) notify(n usecase.Notification) {
	if n.Message != "" {
		h.view.Notify(n)
	}
}

// notified reports whether a write failure came with a notification.
func notified(err error) bool {
	return models.IsValidationError(err) || models.IsRequestError(err)
}
