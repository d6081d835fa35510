package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
)

const (
	leagueNFL   = "americanfootball_nfl"
	leagueNCAAF = "americanfootball_ncaaf"
)

type matchup struct {
	home, away string
	offset     time.Duration
	spread     float64
	total      float64
}

var slates = map[string][]matchup{
	leagueNFL: {
		{home: "Kansas City Chiefs", away: "Baltimore Ravens", offset: 2 * time.Hour, spread: -3, total: 46.5},
		{home: "Philadelphia Eagles", away: "Green Bay Packers", offset: 5 * time.Hour, spread: -1.5, total: 49},
	},
	leagueNCAAF: {
		{home: "Georgia Bulldogs", away: "Clemson Tigers", offset: 3 * time.Hour, spread: -13.5, total: 48.5},
	},
}

// Provider returns a static odds board useful for local testing without
// spending upstream quota.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string { return "fixture" }

// FetchOdds returns a deterministic set of games for league. Leagues
// without a slate return an empty board.
func (p *Provider) FetchOdds(ctx context.Context, league string) ([]odds.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := p.now().UTC().Truncate(time.Hour)
	slate := slates[league]
	events := make([]odds.Event, 0, len(slate))
	for i, m := range slate {
		events = append(events, odds.Event{
			ID:           fmt.Sprintf("fixture-%s-%d", league, i+1),
			SportKey:     league,
			HomeTeam:     m.home,
			AwayTeam:     m.away,
			CommenceTime: start.Add(m.offset).Format(time.RFC3339),
			Bookmakers: []odds.Bookmaker{
				{Key: "fixturebook", Title: "Fixture Book", Markets: markets(m)},
			},
		})
	}
	return events, nil
}

type outcome struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

type market struct {
	Key      string    `json:"key"`
	Outcomes []outcome `json:"outcomes"`
}

func markets(m matchup) json.RawMessage {
	homeSpread, awaySpread := m.spread, -m.spread
	total := m.total
	board := []market{
		{Key: "h2h", Outcomes: []outcome{{Name: m.home, Price: -150}, {Name: m.away, Price: 130}}},
		{Key: "spreads", Outcomes: []outcome{
			{Name: m.home, Price: -110, Point: &homeSpread},
			{Name: m.away, Price: -110, Point: &awaySpread},
		}},
		{Key: "totals", Outcomes: []outcome{
			{Name: "Over", Price: -110, Point: &total},
			{Name: "Under", Price: -110, Point: &total},
		}},
	}
	raw, err := json.Marshal(board)
	if err != nil {
		return json.RawMessage("[]")
	}
	return raw
}
