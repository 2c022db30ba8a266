package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Parse metrics
	TransactionsParsed *prometheus.CounterVec
	ParseErrors        *prometheus.CounterVec
	ParseDuration      *prometheus.HistogramVec
	PostingsPerTx      prometheus.Histogram
	ExchangesParsed    prometheus.Counter
	BatchSize          prometheus.Histogram
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransactionsParsed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quickledger_transactions_parsed_total",
				Help: "Total number of utterances parsed into transactions",
			},
			[]string{"grammar"},
		),
		ParseErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quickledger_parse_errors_total",
				Help: "Total number of parse failures by type",
			},
			[]string{"grammar", "error_type"},
		),
		ParseDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quickledger_parse_duration_seconds",
				Help:    "Duration of parse operations",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"grammar"},
		),
		PostingsPerTx: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "quickledger_postings_per_transaction",
			Help:    "Number of postings in parsed transactions",
			Buckets: []float64{2, 4},
		}),
		ExchangesParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "quickledger_exchanges_parsed_total",
			Help: "Total number of transfers that involved a currency exchange",
		}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "quickledger_batch_lines",
			Help:    "Number of lines submitted per batch parse",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		}),
	}
}

// ObserveParse records a successful parse.
func (m *Metrics) ObserveParse(grammar string, postings int, elapsed time.Duration) {
	m.TransactionsParsed.WithLabelValues(grammar).Inc()
	m.ParseDuration.WithLabelValues(grammar).Observe(elapsed.Seconds())
	m.PostingsPerTx.Observe(float64(postings))
	if postings > 2 {
		m.ExchangesParsed.Inc()
	}
}

// ObserveError records a failed parse.
func (m *Metrics) ObserveError(grammar, errorType string) {
	m.ParseErrors.WithLabelValues(grammar, errorType).Inc()
}

// ObserveBatch records the size of a batch request.
func (m *Metrics) ObserveBatch(lines int) {
	m.BatchSize.Observe(float64(lines))
}
