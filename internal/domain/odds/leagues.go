package odds

import "fmt"

// UnknownLeagueError reports an upstream league key with no configured label.
type UnknownLeagueError struct {
	SportKey string
	GameID   string
}

func (e *UnknownLeagueError) Error() string {
	return fmt.Sprintf("unknown league %q for game %s", e.SportKey, e.GameID)
}

// Leagues maps upstream league keys to client-facing labels.
type Leagues map[string]string

// Label resolves the label for an upstream league key.
func (l Leagues) Label(sportKey string) (string, bool) {
	label, ok := l[sportKey]
	return label, ok && label != ""
}

// Normalize maps events to games in order. Each event yields exactly one game;
// an unlabelled league key fails the whole batch.
func Normalize(events []Event, leagues Leagues) ([]Game, error) {
	games := make([]Game, 0, len(events))
	for _, ev := range events {
		label, ok := leagues.Label(ev.SportKey)
		if !ok {
			return nil, &UnknownLeagueError{SportKey: ev.SportKey, GameID: ev.ID}
		}
		games = append(games, Game{
			ID:           ev.ID,
			Sport:        label,
			HomeTeam:     ev.HomeTeam,
			AwayTeam:     ev.AwayTeam,
			CommenceTime: ev.CommenceTime,
			Bookmakers:   copyBookmakers(ev.Bookmakers),
		})
	}
	return games, nil
}

func copyBookmakers(in []Bookmaker) []Bookmaker {
	out := make([]Bookmaker, len(in))
	for i, b := range in {
		out[i] = Bookmaker{Key: b.Key, Title: b.Title, Markets: b.Markets}
	}
	return out
}
