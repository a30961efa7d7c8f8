package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/ssm-admin/ssm-api/internal/api/http"
	"github.com/ssm-admin/ssm-api/internal/api/http/handlers"
	"github.com/ssm-admin/ssm-api/internal/events"
	"github.com/ssm-admin/ssm-api/internal/observability"
	"github.com/ssm-admin/ssm-api/internal/persistence"
	"github.com/ssm-admin/ssm-api/internal/repository"
	"github.com/ssm-admin/ssm-api/internal/service"
	"github.com/ssm-admin/ssm-api/internal/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := persistence.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := persistence.RunMigrations(cfg.Database, logger); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(worker.NewAuditWorker(dispatcher, redis, logger, cfg.Redis))

	staffService := service.NewStaffService(repository.NewStaffRepository(db), dispatcher, logger)
	stockService := service.NewStockService(repository.NewStockRepository(db), dispatcher, logger)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: !cfg.App.IsDev(),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, httptransport.MiddlewareConfig{
		Timeout:      cfg.App.RequestTimeout(),
		AllowOrigins: cfg.CORS.AllowOrigins,
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, db, redis),
		Staff:   handlers.NewStaffHandler(staffService, logger),
		Stock:   handlers.NewStockHandler(stockService, logger),
		Metrics: handlers.NewMetricsHandler(metrics),
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("driver", cfg.Database.Driver))
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("fiber listen: %w", err)
	case sig := <-waitForShutdown():
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	return app.Shutdown()
}

func waitForShutdown() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	return sigCh
}
