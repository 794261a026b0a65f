// SPDX-License-Identifier: EPL-2.0

package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	endpointReady    = "ready"
	endpointGenerate = "generate"
)

// Metrics counts requests made by a Client. A nil *Metrics records nothing.
type Metrics struct {
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	decodeFailures prometheus.Counter
}

// NewMetrics registers the client collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wavstream",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Requests sent to the TTS server by endpoint and status code.",
		}, []string{"endpoint", "code"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wavstream",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Time until the response headers arrived.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		decodeFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wavstream",
			Subsystem: "client",
			Name:      "decode_failures_total",
			Help:      "Responses whose audio header could not be decoded.",
		}),
	}
}

func (m *Metrics) observe(endpoint, code string, start time.Time) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(endpoint, code).Inc()
	m.duration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

func (m *Metrics) decodeFailed() {
	if m == nil {
		return
	}

	m.decodeFailures.Inc()
}
