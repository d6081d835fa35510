package config

import (
	"strings"
	"time"
)

// OddsAPIConfig controls how we talk to The Odds API and shape responses.
type OddsAPIConfig struct {
	BaseURL    string
	APIKey     string
	Sports     []string
	Regions    string
	Markets    string
	OddsFormat string
	Timeout    time.Duration
	// CacheMaxAge feeds the s-maxage directive on successful responses.
	CacheMaxAge time.Duration
	// Labels maps upstream league keys to the short codes clients see.
	Labels map[string]string
}

// HasAPIKey reports whether a non-blank provider key is configured.
func (c OddsAPIConfig) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// Validate returns ErrAPIKeyMissing when no provider key is set.
func (c OddsAPIConfig) Validate() error {
	if !c.HasAPIKey() {
		return ErrAPIKeyMissing
	}
	return nil
}

func defaultOddsAPI() OddsAPIConfig {
	return OddsAPIConfig{
		BaseURL:     defaultOddsBaseURL,
		Sports:      append([]string(nil), defaultOddsSports...),
		Regions:     defaultOddsRegions,
		Markets:     defaultOddsMarkets,
		OddsFormat:  defaultOddsFormat,
		Timeout:     defaultOddsTimeout,
		CacheMaxAge: defaultCacheMaxAge,
		Labels:      defaultLeagueLabels(),
	}
}

func applyOddsAPIEnv(c *OddsAPIConfig) {
	c.APIKey = envOrDefault(envOddsAPIKey, c.APIKey)
	c.BaseURL = envOrDefault(envOddsBaseURL, c.BaseURL)
	c.Sports = listEnvOrDefault(envOddsSports, c.Sports)
	c.Regions = envOrDefault(envOddsRegions, c.Regions)
	c.Markets = envOrDefault(envOddsMarkets, c.Markets)
	c.OddsFormat = envOrDefault(envOddsFormat, c.OddsFormat)
	c.Timeout = durationEnvOrDefault(envOddsTimeout, c.Timeout)
	c.CacheMaxAge = durationEnvOrDefault(envCacheMaxAge, c.CacheMaxAge)
}
