// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package observers

import (
	"strings"

	"github.com/H0llyW00dzZ/complog/src/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts observed messages as a Prometheus counter vector labelled
// by logger id and severity. It is a [prometheus.Collector] and has to be
// registered with a registry to be exported.
type Metrics struct {
	messages *prometheus.CounterVec
}

var _ prometheus.Collector = (*Metrics)(nil)

// NewMetrics returns a Metrics whose counter is named
// "<namespace>_log_messages_total".
func NewMetrics(namespace string) *Metrics {
	const subsystem = "log"

	return &Metrics{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "messages_total",
			Help:      "Number of accepted log messages.",
		}, []string{"logger", "severity"}),
	}
}

// Observe implements [logger.Observer].
func (m *Metrics) Observe(e logger.Event) error {
	m.messages.WithLabelValues(e.Logger.ID(), strings.ToLower(e.Severity.String())).Inc()
	return nil
}

// Counter returns the counter for the given logger id and severity.
func (m *Metrics) Counter(id string, s logger.Severity) prometheus.Counter {
	return m.messages.WithLabelValues(id, strings.ToLower(s.String()))
}

// Describe implements [prometheus.Collector].
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) { m.messages.Describe(ch) }

// Collect implements [prometheus.Collector].
func (m *Metrics) Collect(ch chan<- prometheus.Metric) { m.messages.Collect(ch) }
