package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importerExtractedEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "extracted_entries_total",
		Help:      "Count of UTXO entries read from the consensus store.",
	}, []string{"network"})

	importerLoadBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "load_batch_total",
		Help:      "Count of UTXO batches written to the target database.",
	}, []string{"network", "status"})

	importerLoadBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "load_batch_duration_seconds",
		Help:      "Duration of writing a UTXO batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	importerLoadBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "load_batch_size",
		Help:      "Number of UTXO entries per written batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1..262144
	}, []string{"network"})

	importerLoadedRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "loaded_rows_total",
		Help:      "Count of UTXO rows written, including rows later rolled back.",
	}, []string{"network"})

	importerRunTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "run_total",
		Help:      "Count of import runs by final state.",
	}, []string{"network", "state", "status"})

	importerRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "importer",
		Name:      "run_duration_seconds",
		Help:      "Duration of import runs.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600},
	}, []string{"network", "state", "status"})
)

// Importer tracks metrics for the pruning-point UTXO import.
type Importer struct {
	network string
}

// NewImporter constructs an Importer metrics collector.
func NewImporter(network string) *Importer {
	if network == "" {
		network = unknown
	}
	return &Importer{network: network}
}

// ObserveExtracted adds entries read from the consensus store.
func (m Importer) ObserveExtracted(entries int) {
	importerExtractedEntriesTotal.WithLabelValues(m.network).Add(float64(entries))
}

// ObserveLoadBatch records a batch write outcome.
func (m Importer) ObserveLoadBatch(err error, entries int, rows int64, started time.Time) {
	s := status(err)
	importerLoadBatchTotal.WithLabelValues(m.network, s).Inc()
	importerLoadBatchDuration.WithLabelValues(m.network, s).Observe(time.Since(started).Seconds())
	importerLoadBatchSize.WithLabelValues(m.network).Observe(float64(entries))
	if rows > 0 {
		importerLoadedRowsTotal.WithLabelValues(m.network).Add(float64(rows))
	}
}

// ObserveRun records the final state of an import run.
func (m Importer) ObserveRun(state string, err error, started time.Time) {
	s := status(err)
	importerRunTotal.WithLabelValues(m.network, state, s).Inc()
	importerRunDuration.WithLabelValues(m.network, state, s).Observe(time.Since(started).Seconds())
}
