package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
	"github.com/preston-bernstein/football-odds-service/internal/logging"
	"github.com/preston-bernstein/football-odds-service/internal/metrics"
)

// instrumentedProvider wraps an OddsProvider with per-league metrics and logs.
// It makes exactly one call per FetchOdds; failures are returned as-is.
type instrumentedProvider struct {
	inner        OddsProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner so every call is timed and recorded.
func NewInstrumentedProvider(inner OddsProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) OddsProvider {
	if providerName == "" {
		providerName = "provider"
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchOdds(ctx context.Context, league string) ([]odds.Event, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, league, "provider unavailable")
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	events, err := p.inner.FetchOdds(ctx, league)
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, league, elapsed, err)

	if err != nil {
		if rl, ok := AsRateLimitError(err); ok {
			p.metrics.RecordRateLimit(p.providerName, league, rl.RetryAfter)
		}
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, league, "provider fetch failed",
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, p.providerName, league, "provider fetch complete",
		slog.Int(logging.FieldCount, len(events)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return events, nil
}
