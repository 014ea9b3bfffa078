// Package metrics defines and registers all custom Prometheus metrics for the
// tracking lookup service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// init through promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracking"

// ── Lookup metrics ────────────────────────────────────────────────────────────

// LookupsTotal counts completed /track requests.
// Labels:
//   - outcome: "success" or "failure"
//   - stage: the last non-terminal phase reached ("idle", "registering", "awaiting", "polling")
var LookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of tracking lookups, by outcome and the stage where the flow stopped.",
	},
	[]string{"outcome", "stage"},
)

// LookupAttempts observes how many gettrackinfo calls a lookup needed.
var LookupAttempts = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lookup_attempts",
		Help:      "Number of provider lookup calls made per tracking request.",
		Buckets:   []float64{0, 1, 2, 3, 4, 5},
	},
)

// LookupDuration measures a whole lookup, fixed delays included.
var LookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lookup_duration_seconds",
		Help:      "Duration of a tracking lookup from request to response.",
		Buckets:   []float64{.1, .5, 1, 2, 3, 4, 5, 7.5, 10, 15, 30},
	},
	[]string{"outcome"},
)

// ── Provider metrics ──────────────────────────────────────────────────────────

// ProviderCallsTotal counts outbound calls to the tracking provider.
// Labels:
//   - op: "register" or "gettrackinfo"
//   - result: "ok", "network_error", "http_error" or "decode_error"
var ProviderCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_calls_total",
		Help:      "Total number of tracking provider calls, by operation and transport result.",
	},
	[]string{"op", "result"},
)

// ProviderCallDuration measures a single provider round trip.
var ProviderCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_call_duration_seconds",
		Help:      "Duration of tracking provider HTTP calls.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"op"},
)

// ── Rate limiting ─────────────────────────────────────────────────────────────

// RateLimitedTotal counts requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected with 429 by the rate limiter.",
	},
)
