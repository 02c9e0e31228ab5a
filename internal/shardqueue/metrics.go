package shardqueue

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidsage_shardqueue",
			Name:      "submissions_total",
			Help:      "Jobs accepted into a shard queue.",
		},
		[]string{"shard"},
	)

	queueFullTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vidsage_shardqueue",
			Name:      "queue_full_total",
			Help:      "Submissions rejected because the shard queue was full.",
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "vidsage_shardqueue",
			Name:      "queue_depth",
			Help:      "Jobs waiting in each shard queue.",
		},
		[]string{"shard"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vidsage_shardqueue",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a single job attempt.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"shard"},
	)
)

func labelFor(shard int) string { return strconv.Itoa(shard) }
