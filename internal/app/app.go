package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/sahelmedia/newsroom/config"
	"github.com/sahelmedia/newsroom/internal/db"
	"github.com/sahelmedia/newsroom/internal/newsroom"
	"github.com/sahelmedia/newsroom/internal/rest"
	"github.com/sahelmedia/newsroom/internal/rpc"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

// New wires the data layer, the public read API and the editorial
// JSON-RPC surface into a single echo server.
func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	repo := db.New(dbConnect)
	manager := newsroom.NewManager(repo)
	handler := rest.NewHandler(manager, logger)

	e := handler.RegisterRoutes()
	rpcServer := rpc.New(logger, manager)
	e.Any("/rpc/", echo.WrapHandler(rpcServer))

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
