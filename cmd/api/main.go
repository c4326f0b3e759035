package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/contact-site/api/internal/config"
	"github.com/octobees/contact-site/api/internal/database"
	"github.com/octobees/contact-site/api/internal/handler"
	"github.com/octobees/contact-site/api/internal/logging"
	middlewarepkg "github.com/octobees/contact-site/api/internal/middleware"
	"github.com/octobees/contact-site/api/internal/repository"
	"github.com/octobees/contact-site/api/internal/router"
	"github.com/octobees/contact-site/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(cfg.LogLevel)
	logger := slog.Default()

	manager := database.NewManager(cfg.Database, logger)
	defer manager.Close()

	if cfg.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migrate(ctx, manager, logger); err != nil {
			cancel()
			manager.Close()
			logging.Fatal("failed to apply migrations", "error", err)
		}
		cancel()
	}

	contactsRepo := repository.NewPGXContactsRepository(manager, logger)
	diagnosticsRepo := repository.NewPGXDiagnosticsRepository(manager, logger)

	contactService := service.NewContactService(contactsRepo)
	diagnosticsService := service.NewDiagnosticsService(contactsRepo, diagnosticsRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID(logger))
	e.Use(middlewarepkg.Logging(logger))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{
		Contact: handler.NewContactHandler(contactService),
		Admin:   handler.NewAdminHandler(contactService, diagnosticsService),
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "port", cfg.Port)
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func migrate(ctx context.Context, manager *database.Manager, logger *slog.Logger) error {
	pool, err := manager.Pool()
	if err != nil {
		return err
	}
	return database.Migrate(ctx, pool, database.MigrateUp, logger)
}
