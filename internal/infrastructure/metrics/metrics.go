package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Posting metrics
	PostingsCreated   *prometheus.CounterVec
	PostingsReversed  prometheus.Counter
	PostingDuplicates *prometheus.CounterVec
	PostingRejections *prometheus.CounterVec
	EntriesWritten    prometheus.Counter
	PostingAmount     prometheus.Histogram

	// Report metrics
	SummaryRequests  *prometheus.CounterVec
	SummaryCacheHits prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Idempotency metrics
	IdempotencyReplays prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		PostingsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "golibro_postings_created_total",
				Help: "Total number of postings appended to the journal by origin",
			},
			[]string{"origin"},
		),
		PostingsReversed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "golibro_postings_reversed_total",
			Help: "Total number of reversal postings created",
		}),
		PostingDuplicates: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "golibro_posting_duplicates_total",
				Help: "Total number of postings skipped because the source document was already posted",
			},
			[]string{"origin"},
		),
		PostingRejections: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "golibro_posting_rejections_total",
				Help: "Total number of postings rejected by validation, by reason",
			},
			[]string{"reason"},
		),
		EntriesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "golibro_journal_entries_written_total",
			Help: "Total number of journal entries written",
		}),
		PostingAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "golibro_posting_amount",
			Help:    "Total debit amount per posting",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		SummaryRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "golibro_summary_requests_total",
				Help: "Total number of summary requests by period",
			},
			[]string{"period"},
		),
		SummaryCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "golibro_summary_cache_hits_total",
			Help: "Total number of summary requests served from cache",
		}),

		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "golibro_http_requests_total",
				Help: "Total HTTP requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "golibro_http_request_duration_seconds",
				Help:    "HTTP request duration by method and path",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		IdempotencyReplays: promauto.NewCounter(prometheus.CounterOpts{
			Name: "golibro_idempotency_replays_total",
			Help: "Total number of HTTP responses replayed from the idempotency store",
		}),
	}
}
