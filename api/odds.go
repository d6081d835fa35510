// Package handler is the serverless entry point: the platform invokes
// Handler for every request routed to this file.
package handler

import (
	"net/http"
	"os"
	"sync"

	"github.com/preston-bernstein/football-odds-service/internal/config"
	"github.com/preston-bernstein/football-odds-service/internal/http/middleware"
	"github.com/preston-bernstein/football-odds-service/internal/logging"
	"github.com/preston-bernstein/football-odds-service/internal/metrics"
	"github.com/preston-bernstein/football-odds-service/internal/server"
)

var (
	initOnce sync.Once
	chain    http.Handler
	initErr  error
)

// Handler serves the aggregated odds board. The handler chain is built once
// per process from the environment and reused across warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(setup)
	if initErr != nil {
		middleware.CORS(http.HandlerFunc(configFailure)).ServeHTTP(w, r)
		return
	}
	chain.ServeHTTP(w, r)
}

func configFailure(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"error":"Failed to fetch odds","message":"invalid configuration"}`))
}

func setup() {
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  "json",
		Service: "football-odds-service",
	})
	cfg, err := config.Load()
	if err != nil {
		logging.Error(logger, "failed to load config", err)
		initErr = err
		return
	}
	chain = server.NewHandler(cfg, logger, metrics.NewRecorder())
}
