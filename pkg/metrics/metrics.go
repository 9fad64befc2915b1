// Package metrics registers the relay's prometheus collectors. Collectors are
// registered on the default registry and served through promhttp on the
// configured metrics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets is a shared set of latency buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// WebhooksReceived counts webhook deliveries by outcome
	// (ok, ignored, unauthorized, error).
	WebhooksReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relay",
		Name:      "webhooks_received_total",
		Help:      "Webhook deliveries by outcome.",
	}, []string{"outcome"})

	// ReceiptsStored counts receipts ingested into the vault.
	ReceiptsStored = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "relay",
		Name:      "receipts_stored_total",
		Help:      "Receipts stored in the vault.",
	})

	// Deliveries counts Telegram deliveries by result
	// (delivered, snoozed, cancelled, error).
	Deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relay",
		Name:      "telegram_deliveries_total",
		Help:      "Telegram delivery attempts by result.",
	}, []string{"result"})

	// MatchScores observes the best token-sort ratio per query.
	MatchScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "relay",
		Name:      "query_match_score",
		Help:      "Best match score per customer-name query.",
		Buckets:   []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	})
)
