package vidsage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	questionsEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidsage_client",
			Name:      "questions_enqueued_total",
			Help:      "Questions accepted into the shard executor.",
		},
		[]string{"shard"},
	)

	questionsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidsage_client",
			Name:      "questions_failed_total",
			Help:      "Questions whose exchange was rolled back after a failed answer.",
		},
		[]string{"shard"},
	)

	uploadsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vidsage_client",
			Name:      "uploads_submitted_total",
			Help:      "Video source payloads accepted by /process.",
		},
	)

	transcriptsDownloadedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vidsage_client",
			Name:      "transcripts_downloaded_total",
			Help:      "Transcript files saved locally.",
		},
	)
)
