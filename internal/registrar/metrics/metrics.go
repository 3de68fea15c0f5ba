// Package metrics provides Prometheus metrics for registrar operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	OperationsTotal          *prometheus.CounterVec   // Operations by provider, operation and outcome
	OperationDurationSeconds *prometheus.HistogramVec // Upstream latency by provider and operation
	OrdersTotal              *prometheus.CounterVec   // Orders by provider and mode (dry_run, commit)

	CatalogHitsTotal          *prometheus.CounterVec // TLD catalog hits by provider
	CatalogMissesTotal        *prometheus.CounterVec // TLD catalog misses by provider
	CatalogStoreErrorsTotal   *prometheus.CounterVec // Failed cache writes by provider
	CatalogInvalidationsTotal *prometheus.CounterVec // Explicit invalidations by provider
}

// New creates a Metrics instance registered with the default registry.
func New() *Metrics {
	return &Metrics{
		OperationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchdog_registrar_operations_total",
			Help: "Total registrar operations by provider, operation and outcome",
		}, []string{"provider", "operation", "outcome"}),

		OperationDurationSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "watchdog_registrar_operation_duration_seconds",
			Help:    "Duration of registrar operations including upstream calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"provider", "operation"}),

		OrdersTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchdog_registrar_orders_total",
			Help: "Total successful orders by provider and mode",
		}, []string{"provider", "mode"}),

		CatalogHitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchdog_registrar_tld_catalog_hits_total",
			Help: "Total TLD catalog cache hits by provider",
		}, []string{"provider"}),

		CatalogMissesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchdog_registrar_tld_catalog_misses_total",
			Help: "Total TLD catalog cache misses by provider",
		}, []string{"provider"}),

		CatalogStoreErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchdog_registrar_tld_catalog_store_errors_total",
			Help: "Total TLD catalog cache write failures by provider",
		}, []string{"provider"}),

		CatalogInvalidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watchdog_registrar_tld_catalog_invalidations_total",
			Help: "Total TLD catalog invalidations by provider",
		}, []string{"provider"}),
	}
}

// RecordOperation records the outcome and duration of a registrar operation.
// outcome is "success" or an error kind.
func (m *Metrics) RecordOperation(provider, operation, outcome string, durationSeconds float64) {
	m.OperationsTotal.WithLabelValues(provider, operation, outcome).Inc()
	m.OperationDurationSeconds.WithLabelValues(provider, operation).Observe(durationSeconds)
}

func (m *Metrics) RecordOrder(provider string, dryRun bool) {
	mode := "commit"
	if dryRun {
		mode = "dry_run"
	}
	m.OrdersTotal.WithLabelValues(provider, mode).Inc()
}

func (m *Metrics) RecordCatalogHit(provider string) {
	m.CatalogHitsTotal.WithLabelValues(provider).Inc()
}

func (m *Metrics) RecordCatalogMiss(provider string) {
	m.CatalogMissesTotal.WithLabelValues(provider).Inc()
}

func (m *Metrics) RecordCatalogStoreError(provider string) {
	m.CatalogStoreErrorsTotal.WithLabelValues(provider).Inc()
}

func (m *Metrics) RecordCatalogInvalidation(provider string) {
	m.CatalogInvalidationsTotal.WithLabelValues(provider).Inc()
}
