// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	m "github.com/ethersphere/swarmlog/pkg/metrics"
)

// metrics groups various metrics counters for statistical reasons.
type metrics struct {
	ErrorCount            m.Counter
	WarnCount             m.Counter
	InfoCount             m.Counter
	FineCount             m.Counter
	SuppressedErrorCount  m.Counter
	AssertionFailureCount m.Counter
}

// Fire implements Hook interface.
func (m metrics) Fire(v Level) error {
	switch v {
	case VerbosityError:
		m.ErrorCount.Inc()
	case VerbosityWarning:
		m.WarnCount.Inc()
	case VerbosityInfo:
		m.InfoCount.Inc()
	case VerbosityFine:
		m.FineCount.Inc()
	}
	return nil
}

// newLogMetrics returns pointer to a new metrics instance ready to use.
// The logger name is attached to every counter as the "logger" label.
func newLogMetrics(name string) *metrics {
	const subsystem = "log"

	labels := m.Labels{"logger": name}
	return &metrics{
		ErrorCount: m.NewCounter(m.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   subsystem,
			Name:        "error_count",
			Help:        "Number ERROR log messages.",
			ConstLabels: labels,
		}),
		WarnCount: m.NewCounter(m.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   subsystem,
			Name:        "warn_count",
			Help:        "Number WARN log messages.",
			ConstLabels: labels,
		}),
		InfoCount: m.NewCounter(m.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   subsystem,
			Name:        "info_count",
			Help:        "Number INFO log messages.",
			ConstLabels: labels,
		}),
		FineCount: m.NewCounter(m.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   subsystem,
			Name:        "fine_count",
			Help:        "Number FINE log messages.",
			ConstLabels: labels,
		}),
		SuppressedErrorCount: m.NewCounter(m.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   subsystem,
			Name:        "suppressed_error_count",
			Help:        "Number of ERROR log messages raised asynchronously because errors were disabled.",
			ConstLabels: labels,
		}),
		AssertionFailureCount: m.NewCounter(m.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   subsystem,
			Name:        "assertion_failure_count",
			Help:        "Number of failed assertions.",
			ConstLabels: labels,
		}),
	}
}
