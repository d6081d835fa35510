package theoddsapi

import "github.com/preston-bernstein/football-odds-service/internal/domain/odds"

func mapEvent(e eventResponse) odds.Event {
	return odds.Event{
		ID:           e.ID,
		SportKey:     e.SportKey,
		HomeTeam:     e.HomeTeam,
		AwayTeam:     e.AwayTeam,
		CommenceTime: e.CommenceTime,
		Bookmakers:   mapBookmakers(e.Bookmakers),
	}
}

func mapBookmakers(in []bookmakerResponse) []odds.Bookmaker {
	out := make([]odds.Bookmaker, 0, len(in))
	for _, b := range in {
		out = append(out, odds.Bookmaker{
			Key:     b.Key,
			Title:   b.Title,
			Markets: b.Markets,
		})
	}
	return out
}

func mapEvents(in []eventResponse) []odds.Event {
	out := make([]odds.Event, 0, len(in))
	for _, e := range in {
		out = append(out, mapEvent(e))
	}
	return out
}
