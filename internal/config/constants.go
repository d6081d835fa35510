package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envConfigFile   = "ODDS_CONFIG_FILE"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envOddsAPIKey  = "ODDS_API_KEY"
	envOddsBaseURL = "ODDS_API_BASE_URL"
	envOddsSports  = "ODDS_API_SPORTS"
	envOddsRegions = "ODDS_API_REGIONS"
	envOddsMarkets = "ODDS_API_MARKETS"
	envOddsFormat  = "ODDS_API_ODDS_FORMAT"
	envOddsTimeout = "ODDS_API_TIMEOUT"
	envCacheMaxAge = "ODDS_CACHE_MAX_AGE"

	defaultPort        = "4000"
	defaultProvider    = "theoddsapi"
	defaultMetricsPort = "9090"
	defaultServiceName = "football-odds-service"

	defaultOddsBaseURL = "https://api.the-odds-api.com/v4"
	defaultOddsRegions = "us"
	defaultOddsMarkets = "h2h,spreads,totals"
	defaultOddsFormat  = "american"
	defaultOddsTimeout = 10 * Duration(time.Second)
	// Downstream caches may reuse a response for this long.
	defaultCacheMaxAge = 300 * Duration(time.Second)

	// LeagueNFL and LeagueNCAAF are the upstream keys fetched by default.
	LeagueNFL   = "americanfootball_nfl"
	LeagueNCAAF = "americanfootball_ncaaf"
)

var defaultOddsSports = []string{LeagueNFL, LeagueNCAAF}

func defaultLeagueLabels() map[string]string {
	return map[string]string{
		LeagueNFL:   "NFL",
		LeagueNCAAF: "NCAAFB",
	}
}
