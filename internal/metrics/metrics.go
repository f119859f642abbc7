// Package metrics defines the Prometheus instrumentation for the bot:
// update volume by kind, transform counts and latency, and user-visible
// rejections by error kind.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the bot's collectors. A Metrics built with a nil
// registerer still works; it just never exposes anything, which keeps
// tests and the chat REPL free of registration conflicts.
type Metrics struct {
	Updates           *prometheus.CounterVec
	Transforms        *prometheus.CounterVec
	TransformDuration *prometheus.HistogramVec
	Rejections        *prometheus.CounterVec
}

// New creates the collectors and registers them with reg when non-nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsonbot_updates_total",
				Help: "Total number of inbound chat updates",
			},
			[]string{"kind"},
		),
		Transforms: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsonbot_transforms_total",
				Help: "Total number of completed transforms",
			},
			[]string{"op"},
		),
		TransformDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "jsonbot_transform_duration_seconds",
				Help: "Duration of transform executions",
			},
			[]string{"op"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsonbot_rejections_total",
				Help: "Total number of user-visible input rejections",
			},
			[]string{"kind"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Updates, m.Transforms, m.TransformDuration, m.Rejections)
	}
	return m
}

// NewNop returns unregistered collectors.
func NewNop() *Metrics {
	return New(nil)
}

// ObserveTransform records one completed transform and its duration.
func (m *Metrics) ObserveTransform(op string, start time.Time) {
	m.Transforms.WithLabelValues(op).Inc()
	m.TransformDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
