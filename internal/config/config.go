package config

import "errors"

// ErrAPIKeyMissing is returned when the odds provider key is not configured.
var ErrAPIKeyMissing = errors.New("API key not configured")

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	OddsAPI  OddsAPIConfig
	Metrics  MetricsConfig
}

// Load reads configuration from defaults, the optional YAML file named by
// ODDS_CONFIG_FILE, and environment variables, in that order of precedence.
func Load() (Config, error) {
	cfg := Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		OddsAPI:  defaultOddsAPI(),
		Metrics:  loadMetrics(),
	}

	if path := envOrDefault(envConfigFile, ""); path != "" {
		file, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		file.applyTo(&cfg.OddsAPI)
	}

	applyOddsAPIEnv(&cfg.OddsAPI)
	return cfg, nil
}
