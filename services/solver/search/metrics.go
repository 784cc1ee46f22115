// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchesTotal counts engine runs by outcome.
	//
	// Labels:
	//   - outcome: "solved" or "exhausted"
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "countdown",
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "Total search runs by outcome",
		},
		[]string{"outcome"},
	)

	// nodesExpandedTotal counts nodes popped and expanded across all runs.
	nodesExpandedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "countdown",
			Subsystem: "search",
			Name:      "nodes_expanded_total",
			Help:      "Total nodes expanded across all search runs",
		},
	)

	// childrenDiscardedTotal counts generated children that never reached
	// the frontier, by reason. "in_frontier" in particular exposes the
	// deliberate discard of cheaper duplicate paths to queued states.
	//
	// Labels:
	//   - reason: "worse_path", "in_frontier", or "depth_limit"
	childrenDiscardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "countdown",
			Subsystem: "search",
			Name:      "children_discarded_total",
			Help:      "Total generated children discarded before insertion, by reason",
		},
		[]string{"reason"},
	)

	// searchDurationSeconds measures wall time per run.
	searchDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "countdown",
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Search run duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// solutionPathLength measures the move count of found solutions.
	solutionPathLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "countdown",
			Subsystem: "search",
			Name:      "solution_path_length",
			Help:      "Distribution of solution path lengths",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6},
		},
	)
)

// recordSearch records metrics for a completed engine run.
//
// Thread Safety: Safe for concurrent use.
func recordSearch(found bool, elapsed time.Duration, expanded, pathLen, worse, inFrontier, depth int) {
	outcome := "exhausted"
	if found {
		outcome = "solved"
	}
	searchesTotal.WithLabelValues(outcome).Inc()
	searchDurationSeconds.Observe(elapsed.Seconds())
	nodesExpandedTotal.Add(float64(expanded))

	childrenDiscardedTotal.WithLabelValues("worse_path").Add(float64(worse))
	childrenDiscardedTotal.WithLabelValues("in_frontier").Add(float64(inFrontier))
	childrenDiscardedTotal.WithLabelValues("depth_limit").Add(float64(depth))

	if found {
		solutionPathLength.Observe(float64(pathLen))
	}
}
