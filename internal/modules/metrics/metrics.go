// Package metrics exposes Prometheus collectors for model calls and history writes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	ModelRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "plant_hub",
		Name:      "model_requests_total",
		Help:      "Vision model requests by analysis type and outcome.",
	}, []string{"type", "status"})

	ModelLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "plant_hub",
		Name:      "model_request_duration_seconds",
		Help:      "Vision model request latency.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"type"})

	HistoryEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "plant_hub",
		Name:      "history_entries",
		Help:      "Entries currently stored in the history file.",
	})
)

func init() {
	Registry.MustRegister(ModelRequests, ModelLatency, HistoryEntries)
	Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
