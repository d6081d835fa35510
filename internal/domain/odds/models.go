package odds

import "encoding/json"

// Event is a game as reported by the upstream odds provider, after decoding.
type Event struct {
	ID           string
	SportKey     string
	HomeTeam     string
	AwayTeam     string
	CommenceTime string
	Bookmakers   []Bookmaker
}

// Bookmaker carries one sportsbook's quotes. Markets is the upstream value,
// byte for byte.
type Bookmaker struct {
	Key     string          `json:"key"`
	Title   string          `json:"title"`
	Markets json.RawMessage `json:"markets"`
}

// Game is the normalized shape returned to clients.
type Game struct {
	ID           string      `json:"id"`
	Sport        string      `json:"sport"`
	HomeTeam     string      `json:"homeTeam"`
	AwayTeam     string      `json:"awayTeam"`
	CommenceTime string      `json:"commence_time"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Response is the success envelope.
type Response struct {
	Success   bool   `json:"success"`
	Games     []Game `json:"games"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the failure envelope. Message is omitted for
// configuration errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewResponse builds a success envelope, never emitting a null games list.
func NewResponse(games []Game, timestamp string) Response {
	if games == nil {
		games = []Game{}
	}
	return Response{
		Success:   true,
		Games:     games,
		Timestamp: timestamp,
	}
}
