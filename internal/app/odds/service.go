package odds

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/preston-bernstein/football-odds-service/internal/domain/odds"
	"github.com/preston-bernstein/football-odds-service/internal/logging"
	"github.com/preston-bernstein/football-odds-service/internal/metrics"
	"github.com/preston-bernstein/football-odds-service/internal/providers"
)

const defaultTimeout = 10 * time.Second

// Config wires the leagues to fetch and how to label them.
type Config struct {
	Leagues []string
	Labels  domain.Leagues
	// Timeout bounds each upstream call.
	Timeout time.Duration
}

// Service fans out one provider call per league and merges the results.
type Service struct {
	provider providers.OddsProvider
	leagues  []string
	labels   domain.Leagues
	timeout  time.Duration
	metrics  *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a Service over provider.
func NewService(provider providers.OddsProvider, cfg Config, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		provider: provider,
		leagues:  append([]string(nil), cfg.Leagues...),
		labels:   cfg.Labels,
		timeout:  timeout,
		metrics:  recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Leagues returns the configured league keys in fetch order.
func (s *Service) Leagues() []string {
	return append([]string(nil), s.leagues...)
}

// Fetch calls every league concurrently and returns the normalized games,
// league order first, upstream order within a league. The first failure
// cancels the outstanding calls and no partial result is returned.
func (s *Service) Fetch(ctx context.Context) ([]domain.Game, error) {
	start := s.now()
	games, err := s.fetch(ctx)
	s.metrics.RecordFetch(s.now().Sub(start), len(games), err)
	return games, err
}

func (s *Service) fetch(ctx context.Context) ([]domain.Game, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	results := make([][]domain.Event, len(s.leagues))
	g, gctx := errgroup.WithContext(ctx)
	for i, league := range s.leagues {
		i, league := i, league
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, s.timeout)
			defer cancel()

			events, err := s.provider.FetchOdds(callCtx, league)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", league, err)
			}
			results[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	merged := make([]domain.Event, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}

	games, err := domain.Normalize(merged, s.labels)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx, s.logger).Debug("odds fetched",
		slog.Int(logging.FieldCount, len(games)),
		slog.Int("leagues", len(s.leagues)),
	)
	return games, nil
}
