package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	pkgmdw "github.com/nguyentranbao-ct/catalog-console/internal/server/middleware"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
	api APIController,
	renderer *PageRenderer,
) error {
	e, err := NewEcho(conf, handler, api, renderer)
	if err != nil {
		return err
	}

	log := logger.MustNamed("http")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting HTTP server", "addr", conf.Server.Addr())
				if err := e.Start(conf.Server.Addr()); !errors.Is(err, http.ErrServerClosed) {
					log.Errorw("HTTP server stopped", "error", err)
					_ = sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
	return nil
}

// NewEcho builds the console HTTP server with every route registered.
func NewEcho(
	conf *config.Config,
	handler Controller,
	api APIController,
	renderer *PageRenderer,
) (*echo.Echo, error) {
	log := logger.MustNamed("http")

	corsPattern, err := conf.Server.CORSPattern()
	if err != nil {
		return nil, fmt.Errorf("cors origins: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = pkgmdw.NewValidator()
	e.Renderer = renderer
	e.HTTPErrorHandler = pkgmdw.ErrorHandler(log, translateConsoleError)

	logConfig := pkgmdw.LogRequestConfig{
		Logger: log,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/health" || path == "/metrics"
		},
		ResponseBody: func(c echo.Context) bool {
			return c.Path() != "/api/v1/console"
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw("PANIC RECOVER", "error", err, "stack", string(stack), "request_id", pkgmdw.GetRequestID(c))
			return err
		},
	}))

	e.GET("/health", handler.Health)

	e.GET("/", handler.Index)
	e.GET("/search", handler.Search)
	e.POST("/page-size", handler.SetPageSize)
	e.POST("/sort/:column", handler.ToggleSort)
	e.POST("/page/prev", handler.PrevPage)
	e.POST("/page/next", handler.NextPage)
	e.POST("/page/:page", handler.GoToPage)
	e.GET("/products/new", handler.OpenCreate)
	e.GET("/products/:id", handler.OpenDetail)
	e.GET("/products/:id/edit", handler.OpenEdit)
	e.POST("/modal/close", handler.CloseModal)
	e.POST("/products", handler.SubmitCreate)
	e.POST("/products/:id", handler.SubmitEdit)
	e.GET("/export.csv", handler.ExportCSV)

	v1 := e.Group("/api/v1", pkgmdw.CORS(corsPattern))
	v1.OPTIONS("/*", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	v1.GET("/console", pkgmdw.WrapHandler(api.GetConsole))
	v1.POST("/console/search", pkgmdw.WrapHandler(api.Search))
	v1.POST("/console/sort", pkgmdw.WrapHandler(api.ToggleSort))
	v1.POST("/console/page", pkgmdw.WrapHandler(api.GoToPage))
	v1.POST("/console/page-size", pkgmdw.WrapHandler(api.SetPageSize))
	v1.POST("/products", pkgmdw.WrapHandler(api.CreateProduct))
	v1.PUT("/products/:id", pkgmdw.WrapHandler(api.UpdateProduct))

	return e, nil
}
