package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/football-odds-service/internal/config"
	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
	"github.com/preston-bernstein/football-odds-service/internal/logging"
	"github.com/preston-bernstein/football-odds-service/internal/metrics"
	"github.com/preston-bernstein/football-odds-service/internal/server"
	"github.com/preston-bernstein/football-odds-service/internal/timeutil"
)

type options struct {
	pretty   bool
	debug    bool
	sports   []string
	timeout  time.Duration
	provider string
}

// loadConfig is swapped in tests.
var loadConfig = config.Load

// NewRootCmd creates the 'oddsfetch' command: one aggregated fetch printed as JSON.
func NewRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "oddsfetch",
		Short:         "Fetch the current football odds board once and print it as JSON",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logs on stderr")
	cmd.Flags().StringSliceVar(&opts.sports, "sports", nil, "league keys to fetch (overrides ODDS_API_SPORTS)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "per-league upstream timeout (overrides ODDS_API_TIMEOUT)")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "provider to use: theoddsapi or fixture")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyOptions(&cfg, opts)
	if err := cfg.OddsAPI.Validate(); err != nil {
		return err
	}

	level := "warn"
	if opts.debug {
		level = "debug"
	}
	logger := logging.NewLogger(logging.Config{
		Level:   level,
		Service: "oddsfetch",
		Output:  cmd.ErrOrStderr(),
	})

	svc := server.BuildService(cfg, logger, metrics.NewRecorder())
	games, err := svc.Fetch(cmd.Context())
	if err != nil {
		logging.Error(logger, "odds fetch failed", err)
		return fmt.Errorf("fetch odds: %w", err)
	}
	logger.Debug("odds fetched", slog.Int(logging.FieldCount, len(games)))

	return writeResponse(cmd.OutOrStdout(), odds.NewResponse(games, timeutil.FormatTimestamp(time.Now())), opts.pretty)
}

func applyOptions(cfg *config.Config, opts options) {
	if len(opts.sports) > 0 {
		cfg.OddsAPI.Sports = opts.sports
	}
	if opts.timeout > 0 {
		cfg.OddsAPI.Timeout = opts.timeout
	}
	if opts.provider != "" {
		cfg.Provider = opts.provider
	}
}

func writeResponse(w io.Writer, resp odds.Response, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(resp)
}
