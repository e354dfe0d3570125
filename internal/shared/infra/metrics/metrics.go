// Package metrics agrupa los colectores Prometheus del servicio.
// Las etiquetas se limitan a valores acotados (ruta registrada, colección).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	requestsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "humanidad_requests_created_total",
			Help: "Help requests persisted, by collection.",
		},
		[]string{"collection"},
	)

	requestsVerified = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "humanidad_requests_verified_total",
			Help: "Donation requests marked as verified, by collection.",
		},
		[]string{"collection"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, HTTPInflight, requestsCreated, requestsVerified)
}

// Recorder expone los contadores de dominio a la capa de aplicación.
type Recorder interface {
	RequestCreated(collection string)
	RequestVerified(collection string)
}

// PrometheusRecorder implementa Recorder sobre los contadores globales.
type PrometheusRecorder struct{}

func (PrometheusRecorder) RequestCreated(collection string) {
	requestsCreated.WithLabelValues(collection).Inc()
}

func (PrometheusRecorder) RequestVerified(collection string) {
	requestsVerified.WithLabelValues(collection).Inc()
}

// NopRecorder no registra nada; útil en tests.
type NopRecorder struct{}

func (NopRecorder) RequestCreated(string)  {}
func (NopRecorder) RequestVerified(string) {}
