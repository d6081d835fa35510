package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
)

// StubProvider is a test double for providers.OddsProvider. Results and
// errors are keyed by league.
type StubProvider struct {
	Events map[string][]odds.Event
	Errs   map[string]error
	// Block, when set for a league, holds the call until the context ends.
	Block map[string]bool
	Calls atomic.Int32

	mu      sync.Mutex
	leagues []string
}

// FetchOdds returns configured events and errors while tracking calls.
func (s *StubProvider) FetchOdds(ctx context.Context, league string) ([]odds.Event, error) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.leagues = append(s.leagues, league)
	s.mu.Unlock()

	if s.Block[league] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err := s.Errs[league]; err != nil {
		return nil, err
	}
	return s.Events[league], nil
}

// Leagues returns the leagues requested so far, in call order.
func (s *StubProvider) Leagues() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.leagues...)
}
