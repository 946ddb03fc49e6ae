// Package metrics wires the engine's queue depths, worker activity, and
// retry counts into Prometheus collectors, following the registry-per-owner
// pattern used for command metrics elsewhere in the retrieval pack.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors holds every metric a Manager registers on its own registry.
// The queue-depth gauges are pull-based (GaugeFunc), since queue depth is cheap to
// read on demand and never needs a push from the hot path; retry counts are
// push-based because a retry is a discrete event at an unpredictable time.
type Collectors struct {
	Registry *prometheus.Registry

	DispatchQueueDepth prometheus.GaugeFunc
	WorkerQueueDepth   prometheus.GaugeFunc

	DispatchRetries prometheus.Counter
	SinkRetries     *prometheus.CounterVec
}

// New builds a Collectors with every gauge backed by the supplied reader
// functions and registers them on a fresh registry.
func New(dispatchQueueDepth, workerQueueDepth func() float64) (*Collectors, error) {
	registry := prometheus.NewRegistry()

	c := &Collectors{
		Registry: registry,
		DispatchQueueDepth: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "logency",
			Name:      "dispatch_queue_depth",
			Help:      "Number of envelopes currently staged in the dispatcher's queue.",
		}, dispatchQueueDepth),
		WorkerQueueDepth: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "logency",
			Name:      "worker_queue_depth",
			Help:      "Number of tasks currently waiting to run on the worker pool.",
		}, workerQueueDepth),
		DispatchRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logency",
			Name:      "dispatch_retries_total",
			Help:      "Number of times the dispatcher rescheduled a drain to retry failed residue.",
		}),
		SinkRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logency",
			Name:      "sink_retries_total",
			Help:      "Number of times a sink rescheduled a drain to retry after a write failure.",
		}, []string{"sink"}),
	}

	collectors := []prometheus.Collector{
		c.DispatchQueueDepth,
		c.WorkerQueueDepth,
		c.DispatchRetries,
		c.SinkRetries,
	}
	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}
