package ioc

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var AppFxOpt = fx.Provide(
	InitApp,
)

var AppFxInvoke = fx.Invoke(
	AppLifecycle,
)

type App struct {
	name    string
	server  *http.Server
	timeout time.Duration

	logger *zap.Logger
}

func InitApp(engine *gin.Engine, zLogger *zap.Logger) *App {
	type config struct {
		Name    string `mapstructure:"name"`
		Addr    string `mapstructure:"addr"`
		Timeout int    `mapstructure:"timeout"`
	}
	cfg := &config{}
	if err := viper.UnmarshalKey("app", cfg); err != nil {
		panic(err)
	}

	return &App{
		name: cfg.Name,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		logger:  zLogger,
	}
}

func AppLifecycle(lc fx.Lifecycle, app *App) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", app.server.Addr)
			if err != nil {
				return err
			}

			// 启动 http 服务器
			go func() {
				if serveErr := app.server.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
					app.logger.Error("[shipsync] http server stopped", zap.Error(serveErr))
				}
			}()

			app.logger.Info("[shipsync] http server started", zap.String("name", app.name), zap.String("addr", app.server.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), app.timeout)
			defer cancel()

			// 优雅退出
			return app.server.Shutdown(shutdownCtx)
		},
	})
}
