// Package metrics defines the Prometheus instruments for the core
// operations. Registration is explicit so tests and embedders control
// what lands in the default registry.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Core operation metrics.
var (
	RetrievalQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travelcore",
			Name:      "retrieval_queries_total",
			Help:      "Total number of retrieval queries",
		},
		[]string{"outcome"},
	)

	IntentClassificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travelcore",
			Name:      "intent_classifications_total",
			Help:      "Total number of classified utterances",
		},
		[]string{"intent"},
	)

	ExtractedFieldsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travelcore",
			Name:      "extracted_fields_total",
			Help:      "Total number of parameter fields extracted",
		},
		[]string{"intent"},
	)

	PolicyWarningsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travelcore",
			Name:      "policy_warnings_total",
			Help:      "Total number of policy warnings emitted",
		},
		[]string{"rule", "severity"},
	)
)

// Retrieval outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// RegisterCoreMetrics registers the core metrics with the default
// Prometheus registry. Call once at startup.
func RegisterCoreMetrics() {
	prometheus.MustRegister(RetrievalQueriesTotal)
	prometheus.MustRegister(IntentClassificationsTotal)
	prometheus.MustRegister(ExtractedFieldsTotal)
	prometheus.MustRegister(PolicyWarningsTotal)
}
