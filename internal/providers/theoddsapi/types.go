package theoddsapi

import "encoding/json"

type eventResponse struct {
	ID           string              `json:"id"`
	SportKey     string              `json:"sport_key"`
	SportTitle   string              `json:"sport_title"`
	CommenceTime string              `json:"commence_time"`
	HomeTeam     string              `json:"home_team"`
	AwayTeam     string              `json:"away_team"`
	Bookmakers   []bookmakerResponse `json:"bookmakers"`
}

type bookmakerResponse struct {
	Key        string          `json:"key"`
	Title      string          `json:"title"`
	LastUpdate string          `json:"last_update"`
	Markets    json.RawMessage `json:"markets"`
}

// errorResponse is the body the API sends alongside non-2xx statuses.
type errorResponse struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

// Quota is the request budget the API reports on every response.
// A value of -1 means the header was missing or unparseable.
type Quota struct {
	Remaining int64
	Used      int64
}
