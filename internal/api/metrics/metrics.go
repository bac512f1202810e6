// Package metrics defines all custom Prometheus metrics for the catalog
// API. It is the single source of truth for metric names, labels, and
// help strings; collectors self-register through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookstore"

// ── Review metrics ────────────────────────────────────────────────────────────

// ReviewsSubmittedTotal counts successful review submissions.
// Label:
//   - result: "created" (new review appended) or "modified" (existing review updated)
var ReviewsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of review submissions accepted, by upsert result.",
	},
	[]string{"result"},
)

// ReviewsDeletedTotal counts successful review deletions.
var ReviewsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_deleted_total",
		Help:      "Total number of reviews deleted.",
	},
)

// ReviewErrorsTotal counts failed review mutations.
// Label:
//   - reason: "auth_failed", "book_not_found", or "review_not_found"
var ReviewErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "review_errors_total",
		Help:      "Total number of review mutations rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogLookupsTotal counts read-side catalog queries.
// Labels:
//   - kind: "list", "isbn", "author", "title", or "reviews"
//   - result: "hit" or "miss"
var CatalogLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_lookups_total",
		Help:      "Total number of catalog queries, by kind and result.",
	},
	[]string{"kind", "result"},
)

// CatalogSize tracks the number of books currently in the catalog.
var CatalogSize = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_size",
		Help:      "Number of books in the in-memory catalog.",
	},
)

// ActivityQueueDepth tracks pending entries per audit dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of review activity entries pending per dispatcher worker.",
	},
	[]string{"worker_id"},
)
