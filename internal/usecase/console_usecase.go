package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/nguyentranbao-ct/catalog-console/internal/catalog"
	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	"github.com/nguyentranbao-ct/catalog-console/internal/export"
	"github.com/nguyentranbao-ct/catalog-console/internal/form"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/internal/render"
	"github.com/nguyentranbao-ct/catalog-console/internal/repo/catalogapi"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
	"github.com/nguyentranbao-ct/catalog-console/pkg/util"
)

const (
	msgLoadFailed   = "Unable to load products. Please try again!"
	msgCreated      = "Product created successfully!"
	msgUpdated      = "Product updated successfully!"
	msgCreateFailed = "Unable to create product."
	msgUpdateFailed = "Unable to update product."
	msgWriteHints   = "Please check:\n- Title must not be empty\n- Price must be positive\n- Category ID must be valid\n- Images must be valid URLs"
)

type console struct {
	mu sync.Mutex

	api      catalogapi.Client
	view     View
	renderer *render.Renderer
	parser   *form.Parser
	log      *zap.SugaredLogger

	pageSizes  []int
	categories []form.CategoryOption
	store      *catalog.Store
	state      catalog.ViewState

	loading    bool
	loadErr    string
	createForm form.ProductForm
	editForm   form.ProductForm
}

func NewConsoleUsecase(conf *config.Config, api catalogapi.Client, view View) (ConsoleUsecase, error) {
	categories, err := form.LoadDefaultCategories()
	if err != nil {
		return nil, err
	}

	pageSizes := slices.Clone(conf.Console.PageSizes)
	if !slices.Contains(pageSizes, conf.Console.ItemsPerPage) {
		pageSizes = append(pageSizes, conf.Console.ItemsPerPage)
		slices.Sort(pageSizes)
	}

	return &console{
		api:        api,
		view:       view,
		renderer:   render.NewRenderer(conf.Console.ThumbnailFallback, conf.Console.DetailFallback),
		parser:     form.NewParser(conf.Console.PlaceholderImage),
		log:        logger.MustNamed("console"),
		pageSizes:  pageSizes,
		categories: categories,
		store:      catalog.NewStore(),
		state:      catalog.NewViewState(conf.Console.ItemsPerPage),
	}, nil
}

// BeginLoad marks the console as loading until the next Load completes.
func (c *console) BeginLoad() {
	c.mu.Lock()
	c.loading = true
	c.loadErr = ""
	c.mu.Unlock()
	c.view.SetLoading(true)
}

func (c *console) Load(ctx context.Context) error {
	c.BeginLoad()
	defer c.view.SetLoading(false)

	products, err := c.api.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.log.Errorw("failed to load products", "error", err)
		c.store.Reset(nil)
		c.loadErr = msgLoadFailed
		return fmt.Errorf("load products: %w", err)
	}

	c.store.Reset(products)
	c.store.Rebuild(c.state.SearchTerm, c.state.Sort)
	c.clampPage()
	c.log.Infow("loaded products", "count", len(products))
	return nil
}

func (c *console) Search(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.SearchTerm = term
	c.state.CurrentPage = 1
	c.store.Rebuild(term, c.state.Sort)
}

func (c *console) SetItemsPerPage(size int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !slices.Contains(c.pageSizes, size) {
		return fmt.Errorf("%w: %d", models.ErrInvalidPageSize, size)
	}
	c.state.ItemsPerPage = size
	c.state.CurrentPage = 1
	return nil
}

func (c *console) ToggleSort(column string) error {
	col, err := catalog.ParseSortColumn(column)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Sort = c.state.Sort.Toggle(col)
	c.store.Resort(c.state.Sort)
	return nil
}

func (c *console) GoToPage(page int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.goToPage(page)
}

func (c *console) PrevPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.goToPage(c.state.CurrentPage - 1)
}

func (c *console) NextPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.goToPage(c.state.CurrentPage + 1)
}

func (c *console) goToPage(page int) bool {
	if page < 1 || page > c.totalPages() {
		return false
	}
	c.state.CurrentPage = page
	return true
}

func (c *console) OpenDetail(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.store.Find(id); !ok {
		return fmt.Errorf("%w: %d", models.ErrProductNotFound, id)
	}
	c.state.CurrentProductID = id
	c.view.ShowModal(ModalDetail)
	return nil
}

func (c *console) CloseModal() {
	c.view.HideModal()
}

func (c *console) BeginCreate() {
	c.view.ShowModal(ModalCreate)
}

func (c *console) BeginEdit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	product, err := c.currentProduct()
	if err != nil {
		return err
	}
	c.editForm = form.FromProduct(product)
	c.view.HideModal()
	c.view.ShowModal(ModalEdit)
	return nil
}

func (c *console) SubmitCreate(ctx context.Context, f form.ProductForm) (WriteResult, error) {
	c.mu.Lock()
	c.createForm = f
	c.mu.Unlock()

	payload, err := c.parser.Parse(f)
	if err != nil {
		return failed(err.Error()), err
	}

	c.log.Debugw("creating product", "title", payload.Title, "category_id", payload.CategoryID)
	created, err := c.api.Create(ctx, payload)
	if err != nil {
		c.log.Errorw("failed to create product", "error", err)
		return failed(writeFailure(msgCreateFailed, err)), fmt.Errorf("create product: %w", err)
	}

	c.mu.Lock()
	c.store.Prepend(*created)
	c.store.Rebuild(c.state.SearchTerm, c.state.Sort)
	c.state.CurrentPage = 1
	c.createForm = form.ProductForm{}
	c.mu.Unlock()

	c.view.HideModal()
	return WriteResult{
		Product:      created,
		Notification: Notification{Level: LevelSuccess, Message: writeSuccess(msgCreated, *created)},
	}, nil
}

func (c *console) SubmitEdit(ctx context.Context, f form.ProductForm) (WriteResult, error) {
	c.mu.Lock()
	c.editForm = f
	id := c.state.CurrentProductID
	c.mu.Unlock()

	if id == 0 {
		return WriteResult{}, models.ErrNoProductSelected
	}

	payload, err := c.parser.Parse(f)
	if err != nil {
		return failed(err.Error()), err
	}

	c.log.Debugw("updating product", "id", id, "title", payload.Title, "category_id", payload.CategoryID)
	updated, err := c.api.Update(ctx, id, payload)
	if err != nil {
		c.log.Errorw("failed to update product", "id", id, "error", err)
		return failed(writeFailure(msgUpdateFailed, err)), fmt.Errorf("update product %d: %w", id, err)
	}

	c.mu.Lock()
	if !c.store.Replace(*updated) {
		c.log.Warnw("updated product is not in the snapshot", "id", updated.ID)
	}
	c.store.Rebuild(c.state.SearchTerm, c.state.Sort)
	c.clampPage()
	c.mu.Unlock()

	c.view.HideModal()
	return WriteResult{
		Product:      updated,
		Notification: Notification{Level: LevelSuccess, Message: writeSuccess(msgUpdated, *updated)},
	}, nil
}

func (c *console) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.store.Filtered()
	page := catalog.Paginate(filtered, c.state.CurrentPage, c.state.ItemsPerPage)

	indicators := make(map[string]string, len(catalog.SortColumns))
	for _, col := range catalog.SortColumns {
		indicators[string(col)] = c.state.Sort.Indicator(col)
	}

	snap := Snapshot{
		TotalCount:       c.store.Len(),
		MatchedCount:     len(filtered),
		Rows:             c.renderer.Rows(page),
		Pagination:       catalog.NewPagination(c.state.CurrentPage, c.totalPages()),
		Sort:             c.state.Sort,
		SortIndicators:   indicators,
		SearchTerm:       c.state.SearchTerm,
		ItemsPerPage:     c.state.ItemsPerPage,
		PageSizes:        slices.Clone(c.pageSizes),
		CreateForm:       c.createForm,
		EditForm:         c.editForm,
		CreateCategories: form.CategoryOptions(c.categories, nil),
		EditCategories:   form.CategoryOptions(c.categories, nil),
		Loading:          c.loading,
		LoadError:        c.loadErr,
	}
	if product, err := c.currentProduct(); err == nil {
		snap.Detail = util.Ptr(c.renderer.Detail(product))
		snap.EditCategories = form.CategoryOptions(c.categories, &product)
	}
	return snap
}

func (c *console) ExportCSV(w io.Writer) (int, error) {
	c.mu.Lock()
	page := c.state.CurrentPage
	products := slices.Clone(catalog.Paginate(c.store.Filtered(), page, c.state.ItemsPerPage))
	c.mu.Unlock()

	if err := export.WriteCSV(w, products); err != nil {
		return page, fmt.Errorf("export page %d: %w", page, err)
	}
	return page, nil
}

func (c *console) totalPages() int {
	return catalog.TotalPages(len(c.store.Filtered()), c.state.ItemsPerPage)
}

// clampPage keeps the current page inside the view after it shrinks.
func (c *console) clampPage() {
	last := max(1, c.totalPages())
	if c.state.CurrentPage > last {
		c.state.CurrentPage = last
	}
}

func (c *console) currentProduct() (models.Product, error) {
	if c.state.CurrentProductID == 0 {
		return models.Product{}, models.ErrNoProductSelected
	}
	product, ok := c.store.Find(c.state.CurrentProductID)
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %d", models.ErrProductNotFound, c.state.CurrentProductID)
	}
	return product, nil
}

func writeSuccess(headline string, p models.Product) string {
	return fmt.Sprintf("%s\n\nID: %d\nTitle: %s\nPrice: %s", headline, p.ID, p.Title, render.FormatPrice(p))
}

func writeFailure(headline string, err error) string {
	detail := err.Error()
	var re *models.RequestError
	if errors.As(err, &re) {
		detail = re.Message()
	}
	return fmt.Sprintf("%s %s\n\nDetails: %s", headline, msgWriteHints, detail)
}

func failed(message string) WriteResult {
	return WriteResult{Notification: Notification{Level: LevelError, Message: message}}
}
