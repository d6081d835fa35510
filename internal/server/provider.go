package server

import (
	"log/slog"

	"github.com/preston-bernstein/football-odds-service/internal/config"
	"github.com/preston-bernstein/football-odds-service/internal/logging"
	"github.com/preston-bernstein/football-odds-service/internal/metrics"
	"github.com/preston-bernstein/football-odds-service/internal/providers"
	"github.com/preston-bernstein/football-odds-service/internal/providers/fixture"
	"github.com/preston-bernstein/football-odds-service/internal/providers/theoddsapi"
)

const (
	providerTheOddsAPI = "theoddsapi"
	providerFixture    = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.OddsProvider {
	switch cfg.Provider {
	case providerFixture:
		return fixture.New()
	case providerTheOddsAPI, "":
		return newOddsAPIClient(cfg.OddsAPI, logger, recorder)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to theoddsapi", slog.String(logging.FieldProvider, cfg.Provider))
		}
		return newOddsAPIClient(cfg.OddsAPI, logger, recorder)
	}
}

func newOddsAPIClient(cfg config.OddsAPIConfig, logger *slog.Logger, recorder *metrics.Recorder) *theoddsapi.Client {
	return theoddsapi.NewClient(theoddsapi.Config{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		Regions:    cfg.Regions,
		Markets:    cfg.Markets,
		OddsFormat: cfg.OddsFormat,
		Timeout:    cfg.Timeout,
		OnQuota:    quotaReporter(logger, recorder),
	})
}

// quotaReporter forwards the upstream request budget to metrics and logs.
func quotaReporter(logger *slog.Logger, recorder *metrics.Recorder) func(string, theoddsapi.Quota) {
	return func(league string, q theoddsapi.Quota) {
		recorder.RecordQuota(providerTheOddsAPI, q.Remaining, q.Used)
		if q.Remaining < 0 && q.Used < 0 {
			return
		}
		logging.Info(logger, "upstream quota",
			slog.String(logging.FieldProvider, providerTheOddsAPI),
			slog.String(logging.FieldLeague, league),
			slog.Int64(logging.FieldRemaining, q.Remaining),
			slog.Int64(logging.FieldUsed, q.Used),
		)
	}
}
