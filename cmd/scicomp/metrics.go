// SPDX-License-Identifier: MIT

package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Solve outcomes reported in scicomp_solves_total.
const (
	resultOK       = "ok"
	resultSingular = "singular"
	resultError    = "error"
)

// metrics is a private registry; it is only ever flushed to a textfile
// (node-exporter textfile collector format), never served.
type metrics struct {
	reg         *prometheus.Registry
	solves      *prometheus.CounterVec
	systemSize  prometheus.Histogram
	evaluations *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scicomp_solves_total",
			Help: "Tridiagonal solves by result.",
		}, []string{"result"}),
		systemSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scicomp_system_size",
			Help:    "Size n of solved tridiagonal systems.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scicomp_integrand_evaluations_total",
			Help: "Integrand evaluations by quadrature method.",
		}, []string{"method"}),
	}
	m.reg.MustRegister(m.solves, m.systemSize, m.evaluations)

	return m
}

// writeTo dumps the registry to path; an empty path is a no-op.
func (m *metrics) writeTo(path string) error {
	if path == "" {
		return nil
	}

	return prometheus.WriteToTextfile(path, m.reg)
}
