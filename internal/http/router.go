package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/football-odds-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The odds board is served at
// the root, matching the serverless deployment, and under /api/odds.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/api/odds", handler.Odds)
	mux.HandleFunc("/{$}", handler.Odds)
	return mux
}
