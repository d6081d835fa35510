package providers

import (
	"context"
	"testing"

	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
)

type testProvider struct{}

func (t *testProvider) FetchOdds(ctx context.Context, league string) ([]odds.Event, error) {
	_ = ctx
	_ = league
	return nil, nil
}

func TestOddsProviderInterfaceImplemented(t *testing.T) {
	var _ OddsProvider = (*testProvider)(nil)
	var _ OddsProvider = NewInstrumentedProvider(&testProvider{}, nil, nil, "test")
}
