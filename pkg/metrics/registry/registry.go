// Copyright 2025 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry bundles the prometheus registry used by the
// swarmlog command together with the build information gauge.
package registry

import (
	"io"

	"github.com/ethersphere/swarmlog"
	"github.com/ethersphere/swarmlog/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Registry struct {
	register metrics.MetricsRegistererGatherer
}

// NewRegistry returns a registry with the go runtime collector and
// the build information gauge labeled with the version and mode.
func NewRegistry(mode string) *Registry {
	r := &Registry{
		register: metrics.NewRegistry(),
	}

	g := collectors.NewGoCollector()

	v := metrics.NewGauge(metrics.GaugeOpts{
		Namespace: metrics.Namespace,
		Name:      "info",
		Help:      "Swarmlog information.",
		ConstLabels: metrics.Labels{
			"version": swarmlog.Version,
			"mode":    mode,
		},
	})
	v.Set(1)

	r.MustRegister(g, v)

	return r
}

func (r *Registry) MustRegister(cs ...metrics.Collector) {
	r.register.MustRegister(cs...)
}

// Register registers all the collectors of the given metrics collector.
func (r *Registry) Register(mc metrics.MetricsCollector) {
	r.MustRegister(mc.Metrics()...)
}

// WriteText writes the gathered metrics in the text exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	return metrics.WriteText(w, r.register)
}
