package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics operasional untuk lifecycle meja
var (
	registry = prometheus.NewRegistry()

	tableTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "table_transitions_total",
			Help: "Table lifecycle transitions by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	snapshotReads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "table_snapshot_reads_total",
			Help: "Snapshot reads served to polling consumers",
		},
	)

	ordersAttached = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_attached_total",
			Help: "Orders attached to tables by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	registry.MustRegister(tableTransitions, snapshotReads, ordersAttached)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordTransition mencatat hasil occupy/release/reserve
func RecordTransition(operation string, err error) {
	tableTransitions.WithLabelValues(operation, outcome(err)).Inc()
}

// RecordSnapshot mencatat satu pembacaan snapshot
func RecordSnapshot() {
	snapshotReads.Inc()
}

// RecordOrderAttach mencatat hasil AttachOrder
func RecordOrderAttach(err error) {
	ordersAttached.WithLabelValues(outcome(err)).Inc()
}

// Handler -> endpoint /metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
