package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/octobees/contact-site/api/internal/config"
	"github.com/octobees/contact-site/api/internal/database"
	"github.com/octobees/contact-site/api/internal/logging"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  up       apply pending migrations (default)
  down     roll back the latest migration
  status   print applied and pending migrations
  reset    roll back every migration`)
	os.Exit(2)
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	command := database.MigrateUp
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	switch command {
	case database.MigrateUp, database.MigrateDown, database.MigrateStatus, database.MigrateReset:
	default:
		usage()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.Database, slog.Default())
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, command, slog.Default()); err != nil {
		pool.Close()
		logging.Fatal("migration failed", "command", command, "error", err)
	}
	slog.Info("migration finished", "command", command)
}
