package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsProcessedTotal counts resolved transaction jobs by type and outcome
	JobsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pangea_tx_jobs_processed_total",
			Help: "Total number of transaction jobs resolved",
		},
		[]string{"type", "outcome"},
	)

	// JobProcessingErrors counts per-job failures during a processing cycle
	JobProcessingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pangea_tx_job_errors_total",
			Help: "Total number of per-job processing failures",
		},
		[]string{"type"},
	)

	// PendingJobs tracks the size of the active working set
	PendingJobs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pangea_tx_jobs_pending",
			Help: "Number of transaction jobs awaiting a receipt",
		},
	)

	// CyclesTotal counts completed processing cycles
	CyclesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pangea_tx_cycles_total",
			Help: "Total number of completed processing cycles",
		},
	)

	// CycleDuration tracks how long one sweep over the active jobs takes
	CycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pangea_tx_cycle_duration_seconds",
			Help:    "Processing cycle duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// MessagesTotal counts messages appended to the messaging queue
	MessagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pangea_messages_total",
			Help: "Total number of messages added to the messaging queue",
		},
	)

	// NationsIndexed counts nations touched by an index sweep
	NationsIndexed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pangea_nations_indexed_total",
			Help: "Total number of nations reconciled against chain logs",
		},
		[]string{"result"},
	)
)
