package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envOddsAPIKey, "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	odds := cfg.OddsAPI
	if odds.BaseURL != defaultOddsBaseURL {
		t.Fatalf("expected default base url %s, got %s", defaultOddsBaseURL, odds.BaseURL)
	}
	if !reflect.DeepEqual(odds.Sports, []string{LeagueNFL, LeagueNCAAF}) {
		t.Fatalf("unexpected default sports %v", odds.Sports)
	}
	if odds.Regions != "us" || odds.Markets != "h2h,spreads,totals" || odds.OddsFormat != "american" {
		t.Fatalf("unexpected default query params %+v", odds)
	}
	if odds.Timeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", odds.Timeout)
	}
	if odds.CacheMaxAge != 300*time.Second {
		t.Fatalf("expected 300s cache max age, got %s", odds.CacheMaxAge)
	}
	if odds.Labels[LeagueNFL] != "NFL" || odds.Labels[LeagueNCAAF] != "NCAAFB" {
		t.Fatalf("unexpected default labels %v", odds.Labels)
	}
	if odds.HasAPIKey() {
		t.Fatalf("expected no api key by default")
	}
	if !errors.Is(odds.Validate(), ErrAPIKeyMissing) {
		t.Fatalf("expected ErrAPIKeyMissing")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envOddsAPIKey, "secret-key")
	t.Setenv(envOddsBaseURL, "http://example.com/v4")
	t.Setenv(envOddsSports, "americanfootball_nfl, ,basketball_nba")
	t.Setenv(envOddsRegions, "us,uk")
	t.Setenv(envOddsMarkets, "h2h")
	t.Setenv(envOddsFormat, "decimal")
	t.Setenv(envOddsTimeout, "3s")
	t.Setenv(envCacheMaxAge, "60s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Port != "5000" || cfg.Provider != "fixture" {
		t.Fatalf("unexpected top-level overrides %+v", cfg)
	}
	odds := cfg.OddsAPI
	if odds.APIKey != "secret-key" || odds.Validate() != nil {
		t.Fatalf("expected api key override, got %q", odds.APIKey)
	}
	if odds.BaseURL != "http://example.com/v4" {
		t.Fatalf("expected base url override, got %s", odds.BaseURL)
	}
	if !reflect.DeepEqual(odds.Sports, []string{"americanfootball_nfl", "basketball_nba"}) {
		t.Fatalf("expected trimmed sports list, got %v", odds.Sports)
	}
	if odds.Regions != "us,uk" || odds.Markets != "h2h" || odds.OddsFormat != "decimal" {
		t.Fatalf("unexpected query overrides %+v", odds)
	}
	if odds.Timeout != 3*time.Second || odds.CacheMaxAge != time.Minute {
		t.Fatalf("unexpected duration overrides %s %s", odds.Timeout, odds.CacheMaxAge)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envOddsTimeout, "not-a-duration")
	t.Setenv(envCacheMaxAge, "0s")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.OddsAPI.Timeout != defaultOddsTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.OddsAPI.Timeout)
	}
	if cfg.OddsAPI.CacheMaxAge != defaultCacheMaxAge {
		t.Fatalf("expected default max age on non-positive value, got %s", cfg.OddsAPI.CacheMaxAge)
	}
}

func TestBlankAPIKeyIsMissing(t *testing.T) {
	c := OddsAPIConfig{APIKey: "   "}
	if c.HasAPIKey() {
		t.Fatalf("expected whitespace key to count as missing")
	}
}

func TestLoadAppliesFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "odds.yaml")
	body := `odds_api:
  base_url: http://file.example.com
  sports: [americanfootball_nfl, americanfootball_cfl]
  timeout: 4s
  cache_max_age: 2m
  labels:
    americanfootball_cfl: CFL
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)
	t.Setenv(envOddsTimeout, "7s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	odds := cfg.OddsAPI
	if odds.BaseURL != "http://file.example.com" {
		t.Fatalf("expected base url from file, got %s", odds.BaseURL)
	}
	if !reflect.DeepEqual(odds.Sports, []string{"americanfootball_nfl", "americanfootball_cfl"}) {
		t.Fatalf("expected sports from file, got %v", odds.Sports)
	}
	if odds.Timeout != 7*time.Second {
		t.Fatalf("expected env to win over file, got %s", odds.Timeout)
	}
	if odds.CacheMaxAge != 2*time.Minute {
		t.Fatalf("expected cache max age from file, got %s", odds.CacheMaxAge)
	}
	if odds.Labels["americanfootball_cfl"] != "CFL" || odds.Labels[LeagueNFL] != "NFL" {
		t.Fatalf("expected file labels merged with defaults, got %v", odds.Labels)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("odds_api: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
