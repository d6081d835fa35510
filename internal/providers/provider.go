package providers

import (
	"context"

	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
)

// OddsProvider fetches upstream events for a single league key
// (e.g. "americanfootball_nfl"). Events are returned in upstream order.
type OddsProvider interface {
	FetchOdds(ctx context.Context, league string) ([]odds.Event, error)
}
