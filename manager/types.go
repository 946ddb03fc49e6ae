// Package manager is the top-level entry point: it owns the worker pool and
// dispatcher shared by every logger and sink created under it, and
// coordinates their creation, lookup, and strictly-ordered teardown.
package manager

import (
	"sync"

	"logency/dispatch"
	"logency/logger"
	"logency/metrics"
	"logency/sink"
	"logency/workerpool"
)

// ErrorHandler receives any error surfaced from the pool, a dispatcher
// drain, a sink drain, or a logger's Log call.
type ErrorHandler func(err error)

// Manager owns the registries of Loggers and Sinks created under one
// worker pool and dispatcher, and coordinates their lifecycle.
type Manager struct {
	pool       *workerpool.Pool
	dispatcher *dispatch.Dispatcher

	loggerMu sync.Mutex
	loggers  map[string]*logger.Logger

	sinkMu sync.Mutex
	sinks  map[string]*sink.Sink

	handlerMu sync.RWMutex
	handler   ErrorHandler

	metrics *metrics.Collectors

	closeOnce sync.Once
}

// New creates the worker pool (workers goroutines) and the dispatcher bound
// to it, per the lifecycle order: Manager creates W, then D parameterized
// by W.
func New(workers int, queueReserve int) (*Manager, error) {
	pool, err := workerpool.New(workers)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		pool:       pool,
		dispatcher: dispatch.New(pool, queueReserve),
		loggers:    make(map[string]*logger.Logger),
		sinks:      make(map[string]*sink.Sink),
	}
	pool.SetErrorHandler(func(r any, err error) {
		m.routeError(errorFromRecovery(r, err))
	})

	collectors, err := metrics.New(
		func() float64 { return float64(m.dispatcher.QueueSize()) },
		func() float64 { return float64(pool.QueueSize()) },
	)
	if err != nil {
		pool.Close()
		return nil, err
	}
	m.metrics = collectors
	m.dispatcher.SetRetryHook(collectors.DispatchRetryHook())

	return m, nil
}

// Metrics returns the collectors backing this manager's instrumentation;
// their Registry field is the Prometheus registry a caller can expose over
// HTTP or scrape directly.
func (m *Manager) Metrics() *metrics.Collectors {
	return m.metrics
}
