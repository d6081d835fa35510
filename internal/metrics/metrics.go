package metrics

import (
	"sync"
	"time"
)

type leagueStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type quota struct {
	remaining int64
	used      int64
	seen      bool
}

// Recorder captures lightweight, in-memory metrics about upstream calls and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*leagueStats
	quotas    map[string]quota
	fetches   int
	fetchErrs int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return &Recorder{
		stats:  make(map[string]*leagueStats),
		quotas: make(map[string]quota),
	}
}

// RecordProviderAttempt increments counters for one upstream league call.
func (r *Recorder) RecordProviderAttempt(provider, league string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(statsKey(provider, league), func(s *leagueStats) {
		s.calls++
		s.lastCallLatency = duration
		if err != nil {
			s.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, league, duration, err)
	}
}

// RecordRateLimit tracks that an upstream call was rate limited.
func (r *Recorder) RecordRateLimit(provider, league string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.update(statsKey(provider, league), func(s *leagueStats) {
		s.rateLimitHits++
		if retryAfter > 0 {
			s.lastRetryAfter = retryAfter
		}
	})
	if r.otel != nil {
		r.otel.recordRateLimit(provider, league, retryAfter)
	}
}

// RecordQuota stores the provider's last reported request quota.
// Negative values mean the header was absent and leave the previous value.
func (r *Recorder) RecordQuota(provider string, remaining, used int64) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	q := r.quotas[provider]
	if remaining >= 0 {
		q.remaining = remaining
		q.seen = true
	}
	if used >= 0 {
		q.used = used
		q.seen = true
	}
	r.quotas[provider] = q
}

// Quota returns the last recorded remaining/used counts and whether any were seen.
func (r *Recorder) Quota(provider string) (remaining, used int64, ok bool) {
	if r == nil {
		return 0, 0, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	q := r.quotas[provider]
	return q.remaining, q.used, q.seen
}

// RecordFetch tracks one aggregated fan-out across all leagues.
func (r *Recorder) RecordFetch(duration time.Duration, games int, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.fetches++
	if err != nil {
		r.fetchErrs++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordFetch(duration, games, err)
	}
}

// Fetches returns the number of aggregated fetches and how many failed.
func (r *Recorder) Fetches() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fetches, r.fetchErrs
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the stats for one provider/league pair.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider, league string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[statsKey(provider, league)]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) update(key string, fn func(*leagueStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[key]
	if !ok {
		stats = &leagueStats{}
		r.stats[key] = stats
	}
	fn(stats)
}

func (r *Recorder) quotaSnapshot() map[string]quota {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]quota, len(r.quotas))
	for k, v := range r.quotas {
		out[k] = v
	}
	return out
}

func statsKey(provider, league string) string {
	return provider + "/" + league
}
