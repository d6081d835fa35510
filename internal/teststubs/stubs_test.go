package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
)

func TestStubProviderReturnsConfiguredResults(t *testing.T) {
	boom := errors.New("boom")
	s := &StubProvider{
		Events: map[string][]odds.Event{"a": {{ID: "1"}}},
		Errs:   map[string]error{"b": boom},
	}
	events, err := s.FetchOdds(context.Background(), "a")
	if err != nil || len(events) != 1 {
		t.Fatalf("unexpected result %v %v", events, err)
	}
	if _, err := s.FetchOdds(context.Background(), "b"); !errors.Is(err, boom) {
		t.Fatalf("expected configured error, got %v", err)
	}
	if s.Calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", s.Calls.Load())
	}
	if got := s.Leagues(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected leagues %v", got)
	}
}

func TestStubProviderBlockHonoursContext(t *testing.T) {
	s := &StubProvider{Block: map[string]bool{"a": true}}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := s.FetchOdds(ctx, "a"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
