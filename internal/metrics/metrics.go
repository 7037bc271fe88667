// SPDX-License-Identifier: MIT

// Package metrics instruments modularity evaluations with Prometheus.
//
// Recorder owns a private registry so tests and embedded callers never
// collide on the global default registry. A nil *Recorder is valid and
// records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "modularity"

// Recorder holds every collector of the CLI.
type Recorder struct {
	EvaluationsTotal   prometheus.Counter
	EvaluationDuration prometheus.Histogram
	LastValue          prometheus.Gauge
	GraphNodes         prometheus.Gauge
	GraphEdges         prometheus.Gauge
	ReassignmentsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRecorder creates a Recorder with its own registry, pre-populated with
// the Go runtime and process collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		EvaluationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Total number of modularity evaluations",
		}),
		EvaluationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Modularity evaluation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		LastValue: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_value",
			Help:      "Most recently computed modularity",
		}),
		GraphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Number of nodes in the evaluated graph",
		}),
		GraphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Number of edges in the evaluated graph",
		}),
		ReassignmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reassignments_total",
			Help:      "Partition changes made in interactive sessions",
		}, []string{"command"}),
		registry: reg,
	}
}

// ObserveEvaluation records one evaluation yielding q after d.
func (r *Recorder) ObserveEvaluation(q float64, d time.Duration) {
	if r == nil {
		return
	}
	r.EvaluationsTotal.Inc()
	r.EvaluationDuration.Observe(d.Seconds())
	r.LastValue.Set(q)
}

// SetGraphSize publishes the size of the graph under evaluation.
func (r *Recorder) SetGraphSize(nodes, edges int) {
	if r == nil {
		return
	}
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// IncReassignment counts a partition change made by command ("cycle", "set", "unset").
func (r *Recorder) IncReassignment(command string) {
	if r == nil {
		return
	}
	r.ReassignmentsTotal.WithLabelValues(command).Inc()
}

// Registry exposes the private registry for gathering in tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
