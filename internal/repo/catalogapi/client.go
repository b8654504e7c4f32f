package catalogapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
	"github.com/nguyentranbao-ct/catalog-console/pkg/util"
)

const (
	OpList   = "list products"
	OpCreate = "create product"
	OpUpdate = "update product"
)

// Client is the only component that talks to the remote catalog.
type Client interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, payload models.ProductPayload) (*models.Product, error)
	Update(ctx context.Context, id int64, payload models.ProductPayload) (*models.Product, error)
}

type client struct {
	rc      *resty.Client
	baseURL string
	latency *prometheus.HistogramVec
}

func NewClient(conf *config.Config) (Client, error) {
	latency, err := util.GetHistogramVec("catalog_api_request_duration_seconds", "op", "code")
	if err != nil {
		return nil, fmt.Errorf("catalog api metrics: %w", err)
	}

	return &client{
		rc:      util.NewRestyClient(conf.Catalog.Timeout, logger.MustNamed("catalogapi")),
		baseURL: strings.TrimRight(conf.Catalog.BaseURL, "/"),
		latency: latency,
	}, nil
}

func (c *client) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, OpList, http.MethodGet, c.baseURL, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *client) Create(ctx context.Context, payload models.ProductPayload) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, OpCreate, http.MethodPost, c.baseURL, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *client) Update(ctx context.Context, id int64, payload models.ProductPayload) (*models.Product, error) {
	var product models.Product
	url := c.baseURL + "/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, OpUpdate, http.MethodPut, url, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *client) do(ctx context.Context, op, method, url string, body, out any) error {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, url)
	if err != nil {
		c.observe(op, "error", start)
		return &models.RequestError{Op: op, Err: err}
	}
	c.observe(op, strconv.Itoa(resp.StatusCode()), start)

	if !resp.IsSuccess() {
		return &models.RequestError{
			Op:     op,
			Status: resp.StatusCode(),
			Body:   resp.String(),
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &models.RequestError{
			Op:     op,
			Status: resp.StatusCode(),
			Err:    fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}

func (c *client) observe(op, code string, start time.Time) {
	c.latency.WithLabelValues(op, code).Observe(time.Since(start).Seconds())
}
