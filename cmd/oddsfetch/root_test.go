package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/football-odds-service/internal/config"
	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
)

func fixtureConfig(key string) func() (config.Config, error) {
	return func() (config.Config, error) {
		return config.Config{
			Provider: "theoddsapi",
			OddsAPI: config.OddsAPIConfig{
				APIKey:  key,
				Sports:  []string{"americanfootball_nfl", "americanfootball_ncaaf"},
				Labels:  map[string]string{"americanfootball_nfl": "NFL", "americanfootball_ncaaf": "NCAAFB"},
				Timeout: time.Second,
			},
		}, nil
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func withConfig(t *testing.T, fn func() (config.Config, error)) {
	t.Helper()
	orig := loadConfig
	loadConfig = fn
	t.Cleanup(func() { loadConfig = orig })
}

func TestRootPrintsFixtureBoard(t *testing.T) {
	withConfig(t, fixtureConfig("k"))

	out, _, err := execute(t, "--provider", "fixture")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var resp odds.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if !resp.Success || len(resp.Games) != 3 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if strings.Contains(out, "\n  ") {
		t.Fatalf("expected compact output by default")
	}
}

func TestRootPrettyAndSports(t *testing.T) {
	withConfig(t, fixtureConfig("k"))

	out, _, err := execute(t, "--provider", "fixture", "--pretty", "--sports", "americanfootball_ncaaf")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "\n  \"success\": true") {
		t.Fatalf("expected indented output, got %s", out)
	}

	var resp odds.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(resp.Games) != 1 || resp.Games[0].Sport != "NCAAFB" {
		t.Fatalf("expected only NCAAF games, got %+v", resp.Games)
	}
}

func TestRootRequiresAPIKey(t *testing.T) {
	withConfig(t, fixtureConfig(""))

	out, _, err := execute(t, "--provider", "fixture")
	if !errors.Is(err, config.ErrAPIKeyMissing) {
		t.Fatalf("expected ErrAPIKeyMissing, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout output, got %s", out)
	}
}

func TestRootReportsConfigError(t *testing.T) {
	withConfig(t, func() (config.Config, error) {
		return config.Config{}, errors.New("bad file")
	})

	if _, _, err := execute(t); err == nil || err.Error() != "bad file" {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	withConfig(t, fixtureConfig("k"))
	if _, _, err := execute(t, "extra"); err == nil {
		t.Fatalf("expected error for positional args")
	}
}

func TestApplyOptions(t *testing.T) {
	cfg, _ := fixtureConfig("k")()
	applyOptions(&cfg, options{timeout: 3 * time.Second, provider: "fixture", sports: []string{"x"}})
	if cfg.OddsAPI.Timeout != 3*time.Second || cfg.Provider != "fixture" || cfg.OddsAPI.Sports[0] != "x" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	applyOptions(&cfg, options{})
	if cfg.OddsAPI.Timeout != 3*time.Second || cfg.Provider != "fixture" {
		t.Fatalf("expected zero options to leave config untouched")
	}
}
