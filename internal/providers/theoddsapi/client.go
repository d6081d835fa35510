package theoddsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
	"github.com/preston-bernstein/football-odds-service/internal/providers"
)

// Config controls how the client reaches The Odds API.
type Config struct {
	BaseURL    string
	APIKey     string
	Regions    string
	Markets    string
	OddsFormat string
	Timeout    time.Duration
	HTTPClient *http.Client
	// OnQuota, when set, receives the request budget reported by each response.
	OnQuota func(league string, q Quota)
}

// Client fetches odds for one league per call and maps them to domain events.
type Client struct {
	baseURL    string
	apiKey     string
	regions    string
	markets    string
	oddsFormat string
	httpClient httpDoer
	onQuota    func(string, Quota)
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		regions:    orDefault(cfg.Regions, defaultRegions),
		markets:    orDefault(cfg.Markets, defaultMarkets),
		oddsFormat: orDefault(cfg.OddsFormat, defaultOddsFormat),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		onQuota:    cfg.OnQuota,
		now:        time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return providerName }

// FetchOdds retrieves the current odds board for league.
func (c *Client) FetchOdds(ctx context.Context, league string) ([]odds.Event, error) {
	req, err := c.buildRequest(ctx, league)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", providerName, league, stripURL(err))
	}
	defer resp.Body.Close()

	if c.onQuota != nil {
		c.onQuota(league, parseQuota(resp.Header))
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			League:     league,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get(headerRetryAfter), c.now()),
			Remaining:  resp.Header.Get(headerRemaining),
			Message:    upstreamMessage(resp.Body),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &providers.StatusError{
			Provider:   providerName,
			League:     league,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(resp.Body),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: read body: %w", providerName, league, stripURL(err))
	}

	events, err := decodeEvents(body)
	if err != nil {
		return nil, &providers.DecodeError{Provider: providerName, League: league, Err: err}
	}
	return mapEvents(events), nil
}

func (c *Client) buildRequest(ctx context.Context, league string) (*http.Request, error) {
	endpoint := c.baseURL + "/sports/" + url.PathEscape(league) + "/odds/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("apiKey", c.apiKey)
	q.Set("regions", c.regions)
	q.Set("markets", c.markets)
	q.Set("oddsFormat", c.oddsFormat)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// upstreamMessage extracts a short reason from an error body.
func upstreamMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBytes))
	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(raw))
}

// stripURL drops the request URL from transport errors; it carries the API key.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request failed: %w", strings.ToLower(urlErr.Op), urlErr.Err)
	}
	return err
}
