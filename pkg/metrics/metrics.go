// Package metrics provides Prometheus metrics for the inference pipeline.
//
// All metrics are registered automatically on package import:
//
//	metrics.TokensClassified.WithLabelValues("integer").Inc()
//	metrics.ColumnsMaterialized.WithLabelValues("int32").Inc()
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TokensClassified counts sampled tokens by lexical category.
	// Labels: category (float/integer/boolean/other)
	TokensClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strata_tokens_classified_total",
			Help: "Total number of tokens classified during sampling",
		},
		[]string{"category"},
	)

	// OverflowFailures counts tokens whose magnitude exhausted the width
	// ladder for their numeric category.
	// Labels: kind (integer/float)
	OverflowFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strata_overflow_failures_total",
			Help: "Total number of numeric tokens exceeding the widest supported width",
		},
		[]string{"kind"},
	)

	// ColumnsMaterialized counts materialized columns by resolved rank.
	// Labels: rank (null/boolean/int32/int64/int128/float32/float64/any)
	ColumnsMaterialized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strata_columns_materialized_total",
			Help: "Total number of columns materialized into typed buffers",
		},
		[]string{"rank"},
	)

	// NullCells counts cells written as absent during materialization.
	// Labels: rank
	NullCells = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strata_null_cells_total",
			Help: "Total number of cells recorded as null during materialization",
		},
		[]string{"rank"},
	)

	// InferenceDuration tracks the per-dataset inference latency in seconds.
	InferenceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "strata_inference_duration_seconds",
			Help: "End-to-end dataset inference latency",
			Buckets: []float64{
				0.0001, // 100μs - tiny samples
				0.001,  // 1ms
				0.01,   // 10ms
				0.1,    // 100ms
				1,      // 1s - large datasets
				10,     // 10s
			},
		},
	)
)
