package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business-level counters. HTTP-level metrics live in the middleware.
var (
	CostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finboard_costs_created_total",
		Help: "Total number of cost records created",
	})

	CostsImported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finboard_costs_imported_total",
		Help: "Total number of cost records ingested via legacy import",
	})

	RevenuesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finboard_revenues_recorded_total",
		Help: "Total number of revenues recorded",
	})

	GoalsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finboard_goals_created_total",
		Help: "Total number of savings goals created",
	})

	ReportCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finboard_report_cache_hits_total",
		Help: "Total number of report cache hits",
	})

	ReportCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finboard_report_cache_misses_total",
		Help: "Total number of report cache misses",
	})
)
