// Package metrics counts POS operations with Prometheus collectors. The
// module exposes no network surface, so the collectors register on a
// caller-supplied registry; an embedding application decides whether and
// how to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the POS operation counters.
type Metrics struct {
	// ItemsAdded counts line item adds on the in-progress bill.
	ItemsAdded prometheus.Counter

	// BillsFinalized counts bills recorded into the history.
	BillsFinalized prometheus.Counter

	// CatalogMutations counts catalog writes, labeled by op
	// (add, update, delete).
	CatalogMutations *prometheus.CounterVec

	// PersistFailures counts failed mirror writes to the bridge.
	PersistFailures prometheus.Counter
}

// New creates the counters and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ItemsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "storebill_items_added_total",
			Help: "Number of line items rung up on the current bill.",
		}),
		BillsFinalized: factory.NewCounter(prometheus.CounterOpts{
			Name: "storebill_bills_finalized_total",
			Help: "Number of bills finalized into the billing history.",
		}),
		CatalogMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storebill_catalog_mutations_total",
			Help: "Number of catalog writes by operation.",
		}, []string{"op"}),
		PersistFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "storebill_persist_failures_total",
			Help: "Number of failed writes to the persistence bridge.",
		}),
	}
}
