// Package metrics records catalogue activity in a Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelOperation = "operation"
	labelOutcome   = "outcome"
	labelResult    = "result"

	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"

	ResultAdded   = "added"
	ResultDropped = "dropped"
)

// Metrics holds the catalogue collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Products       prometheus.Gauge
	ReorderPending prometheus.Gauge
	Operations     *prometheus.CounterVec
	BatchProducts  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		Products: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalogue_products",
			Help: "Number of products in the catalogue",
		}),
		ReorderPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalogue_reorder_pending",
			Help: "Products at or below their reorder level at the last check",
		}),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalogue_operations_total",
				Help: "Catalogue operations by outcome",
			},
			[]string{labelOperation, labelOutcome},
		),
		BatchProducts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalogue_batch_products_total",
				Help: "Batch entries added or dropped for lack of stock",
			},
			[]string{labelResult},
		),
	}

	reg.MustRegister(m.Products, m.ReorderPending, m.Operations, m.BatchProducts)
	return m
}

// ObserveOperation counts one operation with its outcome.
func (m *Metrics) ObserveOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
}

// SetProducts records the current catalogue size.
func (m *Metrics) SetProducts(n int) {
	if m == nil {
		return
	}
	m.Products.Set(float64(n))
}

// SetReorderPending records the size of the latest reorder report.
func (m *Metrics) SetReorderPending(n int) {
	if m == nil {
		return
	}
	m.ReorderPending.Set(float64(n))
}

// ObserveBatch counts the entries a batch added and dropped.
func (m *Metrics) ObserveBatch(added, dropped int) {
	if m == nil {
		return
	}
	m.BatchProducts.WithLabelValues(ResultAdded).Add(float64(added))
	m.BatchProducts.WithLabelValues(ResultDropped).Add(float64(dropped))
}

// WriteTextfile writes the registry in the text exposition format,
// suitable for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
