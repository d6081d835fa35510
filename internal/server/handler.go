package server

import (
	"log/slog"
	"net/http"

	appodds "github.com/preston-bernstein/football-odds-service/internal/app/odds"
	"github.com/preston-bernstein/football-odds-service/internal/config"
	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
	httpserver "github.com/preston-bernstein/football-odds-service/internal/http"
	"github.com/preston-bernstein/football-odds-service/internal/http/handlers"
	"github.com/preston-bernstein/football-odds-service/internal/http/middleware"
	"github.com/preston-bernstein/football-odds-service/internal/logging"
	"github.com/preston-bernstein/football-odds-service/internal/metrics"
	"github.com/preston-bernstein/football-odds-service/internal/providers"
)

// BuildService wires the configured provider into an odds service.
func BuildService(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *appodds.Service {
	return newService(cfg, logger, recorder, newProviderFactory(logger, recorder).build(cfg))
}

// NewHandler returns the full request chain (CORS, logging, routes) for cfg.
// Both the long-running server and the serverless entry point serve it.
func NewHandler(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	return buildHandler(cfg, logger, recorder, BuildService(cfg, logger, recorder))
}

func newService(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.OddsProvider) *appodds.Service {
	return appodds.NewService(provider, appodds.Config{
		Leagues: cfg.OddsAPI.Sports,
		Labels:  odds.Leagues(cfg.OddsAPI.Labels),
		Timeout: cfg.OddsAPI.Timeout,
	}, recorder, logger)
}

func buildHandler(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, svc *appodds.Service) http.Handler {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	h := handlers.NewHandler(svc, cfg.OddsAPI, logger)
	router := httpserver.NewRouter(h)
	return middleware.CORS(middleware.LoggingMiddleware(logger, recorder, router))
}
