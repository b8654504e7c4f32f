package app

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	"github.com/nguyentranbao-ct/catalog-console/internal/repo/catalogapi"
	"github.com/nguyentranbao-ct/catalog-console/internal/server"
	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
	"github.com/nguyentranbao-ct/catalog-console/pkg/logger"
)

func Invoke(funcs ...any) *fx.App {
	conf := config.MustLoad()
	if err := logger.Configure(conf.Log.Level, conf.Log.Encoding); err != nil {
		panic(err)
	}

	log := logger.MustNamed("app")
	log.Debugw("config loaded", "config", conf)
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			catalogapi.NewClient,

			server.NewConsoleView,
			newView,
			usecase.NewConsoleUsecase,

			server.NewPageRenderer,
			server.NewController,
			server.NewAPIController,
		),
		fx.Supply(conf),
		fx.Invoke(InitializeCatalog),
		fx.Invoke(funcs...),
		fx.StopTimeout(15*time.Second),
	)
}

func newView(v *server.ConsoleView) usecase.View {
	return v
}

// InitializeCatalog fetches the product list once the app starts. The fetch
// runs in the background so the console can show its loading state.
func InitializeCatalog(lc fx.Lifecycle, console usecase.ConsoleUsecase) {
	log := logger.MustNamed("app")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			console.BeginLoad()
			go func() {
				defer close(done)
				if err := console.Load(ctx); err != nil {
					log.Errorw("initial catalog load failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
