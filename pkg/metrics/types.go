// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const (
	// Namespace is prefixed before every metric. If it is changed, it must be done
	// before any metrics collector is registered.
	Namespace = "swarmlog"

	TypeTextPlain = expfmt.FmtText
)

type (
	MetricsCollector interface {
		Metrics() []prometheus.Collector
	}

	MetricsRegistererGatherer interface {
		Gather() ([]*MetricFamily, error)
		MustRegister(...Collector)
		Register(Collector) error
		Unregister(Collector) bool
	}
)

// Prometheus types aliases
type (
	Collector = prometheus.Collector
	Labels    = prometheus.Labels
	Metric    = prometheus.Metric

	Counter     = prometheus.Counter
	CounterOpts = prometheus.CounterOpts

	Gauge     = prometheus.Gauge
	GaugeOpts = prometheus.GaugeOpts

	MetricFamily = dto.MetricFamily
)
