package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/football-odds-service/internal/config"
	"github.com/preston-bernstein/football-odds-service/internal/logging"
	"github.com/preston-bernstein/football-odds-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "football-odds-service"
)

var exit = os.Exit

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})

	cfg, err := config.Load()
	if err != nil {
		logging.Error(logger, "failed to load config", err)
		exit(1)
		return
	}
	if !cfg.OddsAPI.HasAPIKey() {
		logger.Warn("ODDS_API_KEY not set; odds requests will fail until it is configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
