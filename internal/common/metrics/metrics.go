// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	OnboardingBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_batches_total",
			Help: "Onboarding runs by terminal status",
		},
		[]string{"status"},
	)

	OnboardingDocuments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "onboarding_documents_total",
			Help: "Processed documents by kind and verification status",
		},
		[]string{"kind", "status"},
	)

	OnboardingStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "onboarding_stage_duration_seconds",
			Help:    "Duration of each onboarding stage",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	ExtractionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_requests_total",
			Help: "Extraction backend calls by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	AccountsProvisioned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accounts_provisioned_total",
			Help: "Bank accounts created or activated",
		},
		[]string{"account_type", "status"},
	)

	AccountNumberCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "account_number_collisions_total",
			Help: "Generated account numbers that were already taken",
		},
	)
)
