package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rebuild metrics for the graph engine.
// We use 'promauto' which automatically registers metrics without complex
// initialization; callers expose the default registry however they like
// (the engine itself serves no HTTP).

var (
	// RebuildsTotal counts graph rebuild invocations.
	RebuildsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tabby_rebuilds_total",
			Help: "Total number of graph rebuilds executed",
		},
	)

	// RebuildDuration measures how long a full rebuild takes.
	// Buckets cover a handful of tabs up to the O(n²) hundreds range.
	RebuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tabby_rebuild_duration_seconds",
			Help:    "Duration of full graph rebuilds in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		},
	)

	// TabsTotal tracks the number of tabs in the last rebuilt graph.
	TabsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tabby_tabs_total",
			Help: "Number of tabs in the most recent graph",
		},
	)

	// GroupsTotal tracks the number of groups in the last rebuilt graph.
	GroupsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tabby_groups_total",
			Help: "Number of groups in the most recent graph",
		},
	)

	// EdgesTotal tracks the number of edges in the last rebuilt graph.
	EdgesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tabby_edges_total",
			Help: "Number of edges in the most recent graph",
		},
	)

	// DuplicatesTotal tracks how many tabs were folded into a primary
	// during the most recent rebuild.
	DuplicatesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tabby_duplicates_total",
			Help: "Number of duplicate tabs detected in the most recent rebuild",
		},
	)
)
