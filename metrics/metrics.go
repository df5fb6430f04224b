// Package metrics exposes counters for the two reconciliation
// heuristics that must stay loudly observable: the all-items
// reconciliation fallback and container-id derivation by string
// pattern. Both encode undocumented upstream id-format assumptions and
// would otherwise fail silently after an upstream schema change.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReconcileFallbackTotal counts offers for which no a-la-carte item
	// correlated and the conservative all-items fallback was applied.
	ReconcileFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skyretail_reconcile_fallback_total",
		Help: "Offers reconciled via the conservative all-items fallback.",
	})

	// ContainerIDDerivedTotal counts ancillary request items whose
	// container offer id had to be derived by stripping a numeric
	// suffix from a legacy-style item id.
	ContainerIDDerivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skyretail_container_id_derived_total",
		Help: "Ancillary items whose container offer id was pattern-derived.",
	})
)
