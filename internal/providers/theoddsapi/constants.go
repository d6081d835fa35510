package theoddsapi

import "time"

const (
	providerName = "theoddsapi"

	defaultBaseURL     = "https://api.the-odds-api.com/v4"
	defaultRegions     = "us"
	defaultMarkets     = "h2h,spreads,totals"
	defaultOddsFormat  = "american"
	defaultHTTPTimeout = 10 * time.Second

	// Odds payloads for a full slate stay well under this.
	maxBodyBytes  = 16 << 20
	maxErrorBytes = 512

	headerRemaining  = "x-requests-remaining"
	headerUsed       = "x-requests-used"
	headerRetryAfter = "Retry-After"
)
