// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package metrics provides lazily-created, name-addressed Prometheus
// collectors, so callers throughout the staking engine can record a counter
// or gauge by name without threading a registry reference through every
// function signature.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	mu          sync.Mutex
	counters    = map[string]*CounterMetric{}
	counterVecs = map[string]*CounterVecMetric{}
	gauges      = map[string]*GaugeMetric{}
	gaugeVecs   = map[string]*GaugeVecMetric{}
)

// CounterMetric wraps a single prometheus.Counter.
type CounterMetric struct {
	c prometheus.Counter
}

// Add increments the counter by delta.
func (m *CounterMetric) Add(delta int64) {
	m.c.Add(float64(delta))
}

// Counter returns the named counter, registering it on first use.
func Counter(name string) *CounterMetric {
	mu.Lock()
	defer mu.Unlock()
	if m, ok := counters[name]; ok {
		return m
	}
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "staking",
		Name:      name,
	})
	prometheus.MustRegister(c)
	m := &CounterMetric{c: c}
	counters[name] = m
	return m
}

// CounterVecMetric wraps a prometheus.CounterVec.
type CounterVecMetric struct {
	labelNames []string
	v          *prometheus.CounterVec
}

// AddWithLabel increments the counter for the given label name-to-value
// map by delta.
func (m *CounterVecMetric) AddWithLabel(delta int64, labels map[string]string) {
	m.v.With(toPromLabels(labels)).Add(float64(delta))
}

// CounterVec returns the named counter vector over labelNames, registering
// it on first use.
func CounterVec(name string, labelNames []string) *CounterVecMetric {
	mu.Lock()
	defer mu.Unlock()
	if m, ok := counterVecs[name]; ok {
		return m
	}
	v := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staking",
		Name:      name,
	}, labelNames)
	prometheus.MustRegister(v)
	m := &CounterVecMetric{labelNames: labelNames, v: v}
	counterVecs[name] = m
	return m
}

// GaugeMetric wraps a single prometheus.Gauge.
type GaugeMetric struct {
	g prometheus.Gauge
}

// Set sets the gauge to v.
func (m *GaugeMetric) Set(v float64) {
	m.g.Set(v)
}

// Gauge returns the named gauge, registering it on first use.
func Gauge(name string) *GaugeMetric {
	mu.Lock()
	defer mu.Unlock()
	if m, ok := gauges[name]; ok {
		return m
	}
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "staking",
		Name:      name,
	})
	prometheus.MustRegister(g)
	m := &GaugeMetric{g: g}
	gauges[name] = m
	return m
}

// GaugeVecMetric wraps a prometheus.GaugeVec.
type GaugeVecMetric struct {
	labelNames []string
	v          *prometheus.GaugeVec
}

// SetWithLabel sets the gauge for the given label values.
func (m *GaugeVecMetric) SetWithLabel(v float64, labels map[string]string) {
	m.v.With(toPromLabels(labels)).Set(v)
}

// GaugeVec returns the named gauge vector over labelNames, registering it
// on first use.
func GaugeVec(name string, labelNames []string) *GaugeVecMetric {
	mu.Lock()
	defer mu.Unlock()
	if m, ok := gaugeVecs[name]; ok {
		return m
	}
	v := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "staking",
		Name:      name,
	}, labelNames)
	prometheus.MustRegister(v)
	m := &GaugeVecMetric{labelNames: labelNames, v: v}
	gaugeVecs[name] = m
	return m
}

func toPromLabels(labels map[string]string) prometheus.Labels {
	out := make(prometheus.Labels, len(labels))
	for k, v := range labels {
		out[k] = v
	}
	return out
}
