package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/football-odds-service/internal/logging"
)

// logWithProvider emits a log entry on the request-scoped logger when present
// and always includes provider and league names.
func logWithProvider(ctx context.Context, fallback *slog.Logger, level slog.Level, provider, league, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, provider),
		slog.String(logging.FieldLeague, league),
	)
	logger.Log(ctx, level, msg, args...)
}
