// Package metrics provides Prometheus metrics for newsdigest.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsdigest"

var (
	// DigestTotal counts digest requests.
	DigestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "digest_total",
			Help:      "Total number of digest requests",
		},
		[]string{"category", "status"},
	)

	// FeedFetchTotal counts feed fetches.
	FeedFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_fetch_total",
			Help:      "Total number of feed fetches",
		},
		[]string{"status"},
	)

	// FeedItems observes the number of entries per fetched feed.
	FeedItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_items",
			Help:      "Distribution of entries per feed",
			Buckets:   []float64{0, 5, 10, 25, 50, 100, 250},
		},
	)

	// SummarizeDuration measures calls to the summarization service.
	SummarizeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "summarize_duration_seconds",
			Help:      "Duration of summarization calls in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"status"},
	)
)

// Status labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// status returns a label for the given error.
func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}

// RecordDigest records a finished digest request.
func RecordDigest(category string, err error) {
	DigestTotal.WithLabelValues(category, status(err)).Inc()
}

// RecordFeedFetch records a feed fetch and the number of its entries.
func RecordFeedFetch(items int, err error) {
	FeedFetchTotal.WithLabelValues(status(err)).Inc()
	if err == nil {
		FeedItems.Observe(float64(items))
	}
}

// RecordSummarize records a summarization call.
func RecordSummarize(seconds float64, err error) {
	SummarizeDuration.WithLabelValues(status(err)).Observe(seconds)
}
