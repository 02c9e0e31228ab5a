package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "vidsage_client",
		Name:      "request_failures_total",
		Help:      "Requests that ended in a RequestError.",
	},
	[]string{"method"},
)
