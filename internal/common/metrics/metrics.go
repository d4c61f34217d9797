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

	MatchesFound = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scholarship_matches_found",
			Help:    "Number of scholarships matched per find-matches job",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10, 14},
		},
	)

	EligibilityChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scholarship_eligibility_checks_total",
			Help: "Total eligibility reports generated, by outcome",
		},
		[]string{"outcome"},
	)

	StudentCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "student_profile_cache_requests_total",
			Help: "Student profile cache lookups, by result",
		},
		[]string{"result"},
	)
)
