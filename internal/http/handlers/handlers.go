package handlers

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/preston-bernstein/football-odds-service/internal/config"
	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
	"github.com/preston-bernstein/football-odds-service/internal/logging"
	"github.com/preston-bernstein/football-odds-service/internal/timeutil"
)

const (
	msgFetchFailed = "Failed to fetch odds"
	headerCache    = "Cache-Control"
)

type nowFunc func() time.Time

// OddsFetcher returns the merged, normalized games for every configured league.
type OddsFetcher interface {
	Fetch(ctx context.Context) ([]odds.Game, error)
}

// Handler wires HTTP routes to the odds service.
type Handler struct {
	fetcher OddsFetcher
	cfg     config.OddsAPIConfig
	logger  *slog.Logger
	now     nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(fetcher OddsFetcher, cfg config.OddsAPIConfig, logger *slog.Logger) *Handler {
	return &Handler{
		fetcher: fetcher,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Odds serves the aggregated odds board. Preflight requests short-circuit
// before any configuration check; every other method is served like GET.
func (h *Handler) Odds(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method == nethttp.MethodOptions {
		w.WriteHeader(nethttp.StatusOK)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.cfg.Validate(); err != nil {
		logging.Error(logger, "odds request rejected", err)
		writeJSON(w, nethttp.StatusInternalServerError, odds.ErrorResponse{Error: err.Error()}, h.logger)
		return
	}

	if h.fetcher == nil {
		logging.Error(logger, "odds fetch failed", errNoFetcher)
		writeError(w, nethttp.StatusInternalServerError, msgFetchFailed, errNoFetcher, h.logger)
		return
	}

	games, err := h.fetcher.Fetch(r.Context())
	if err != nil {
		logging.Error(logger, "odds fetch failed", err)
		writeError(w, nethttp.StatusInternalServerError, msgFetchFailed, err, h.logger)
		return
	}

	logging.Info(logger, "served odds", slog.Int(logging.FieldCount, len(games)))
	w.Header().Set(headerCache, cacheControl(h.cfg.CacheMaxAge))
	writeJSON(w, nethttp.StatusOK, odds.NewResponse(games, timeutil.FormatTimestamp(h.now())), h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet && r.Method != nethttp.MethodHead {
		writeJSON(w, nethttp.StatusMethodNotAllowed, odds.ErrorResponse{Error: "method not allowed"}, h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeJSON(w, nethttp.StatusServiceUnavailable, odds.ErrorResponse{Error: "shutting down"}, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

func cacheControl(maxAge time.Duration) string {
	secs := int64(maxAge / time.Second)
	if secs <= 0 {
		secs = int64(defaultCacheMaxAge / time.Second)
	}
	return fmt.Sprintf("s-maxage=%d, stale-while-revalidate", secs)
}
