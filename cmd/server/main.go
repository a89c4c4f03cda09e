package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/nfl-data-service/internal/config"
	"github.com/preston-bernstein/nfl-data-service/internal/logging"
	"github.com/preston-bernstein/nfl-data-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	if err := run(os.Getenv("CONFIG_FILE")); err != nil {
		fmt.Fprintf(os.Stderr, "nfl-data-service: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "nfl-data-service",
		Version: appVersion,
	})

	srv, err := server.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv.Run(ctx, stop)
	return nil
}
