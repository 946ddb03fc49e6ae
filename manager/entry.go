package manager

import (
	"logency/logger"
	"logency/sink"
)

// NewLogger creates a logger named name bound to this manager's dispatcher.
// It fails if a logger with that name already exists. The new logger
// inherits the manager's current error handler.
func (m *Manager) NewLogger(name string) (*logger.Logger, error) {
	m.loggerMu.Lock()
	defer m.loggerMu.Unlock()

	if _, exists := m.loggers[name]; exists {
		return nil, duplicateLogger(name)
	}

	l := logger.New(name, m.dispatcher)
	if handler := m.getHandler(); handler != nil {
		l.SetErrorHandler(logger.ErrorHandler(handler))
	}
	m.loggers[name] = l
	return l, nil
}

// FindLogger returns the logger named name, or nil if none is registered.
func (m *Manager) FindLogger(name string) *logger.Logger {
	m.loggerMu.Lock()
	defer m.loggerMu.Unlock()
	return m.loggers[name]
}

// DeleteLogger removes the logger named name from the registry and marks
// it destroyed. Records it already handed to the dispatcher before this
// call still reach their sinks; WaitUntilIdle observes that draining.
func (m *Manager) DeleteLogger(name string) error {
	m.loggerMu.Lock()
	defer m.loggerMu.Unlock()

	l, exists := m.loggers[name]
	if !exists {
		return missingLogger(name)
	}
	l.MarkDestroyed()
	delete(m.loggers, name)
	return nil
}

// NewSink creates a sink named name writing through module, scheduled on
// this manager's worker pool. It fails if a sink with that name already
// exists or if module is nil.
func (m *Manager) NewSink(name string, module sink.Module, queueReserve int) (*sink.Sink, error) {
	m.sinkMu.Lock()
	defer m.sinkMu.Unlock()

	if _, exists := m.sinks[name]; exists {
		return nil, duplicateSink(name)
	}

	s, err := sink.New(name, module, m.pool, queueReserve)
	if err != nil {
		return nil, err
	}
	if handler := m.getHandler(); handler != nil {
		s.SetErrorHandler(sink.ErrorHandler(handler))
	}
	if m.metrics != nil {
		s.SetRetryHook(m.metrics.SinkRetryHook(name))
	}
	m.sinks[name] = s
	return s, nil
}

// FindSink returns the sink named name, or nil if none is registered.
func (m *Manager) FindSink(name string) *sink.Sink {
	m.sinkMu.Lock()
	defer m.sinkMu.Unlock()
	return m.sinks[name]
}

// DeleteSink removes the sink named name from the registry, flushing its
// module. It fails if no sink with that name is registered.
func (m *Manager) DeleteSink(name string) error {
	m.sinkMu.Lock()
	defer m.sinkMu.Unlock()

	s, exists := m.sinks[name]
	if !exists {
		return missingSink(name)
	}
	delete(m.sinks, name)
	s.Close()
	return nil
}

// SetErrorHandler atomically swaps the manager's error handler, installs it
// on the worker pool and every currently registered logger and sink, and
// arranges for every logger/sink created afterward to inherit it.
func (m *Manager) SetErrorHandler(handler ErrorHandler) {
	m.handlerMu.Lock()
	m.handler = handler
	m.handlerMu.Unlock()

	m.loggerMu.Lock()
	for _, l := range m.loggers {
		l.SetErrorHandler(logger.ErrorHandler(handler))
	}
	m.loggerMu.Unlock()

	m.sinkMu.Lock()
	for _, s := range m.sinks {
		s.SetErrorHandler(sink.ErrorHandler(handler))
	}
	m.sinkMu.Unlock()
}

// WaitUntilIdle blocks until the worker pool's task queue is empty and no
// worker is executing a task.
func (m *Manager) WaitUntilIdle() {
	m.pool.WaitUntilIdle()
}

// Close tears the manager down in strict order: wait for the pool to go
// idle, mark every logger destroyed, clear the logger map, clear the sink
// map (flushing each module), then drop the dispatcher and the pool. Close
// is idempotent.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.pool.WaitUntilIdle()

		m.loggerMu.Lock()
		for _, l := range m.loggers {
			l.MarkDestroyed()
		}
		m.loggers = make(map[string]*logger.Logger)
		m.loggerMu.Unlock()

		m.sinkMu.Lock()
		for _, s := range m.sinks {
			s.Close()
		}
		m.sinks = make(map[string]*sink.Sink)
		m.sinkMu.Unlock()

		m.dispatcher = nil
		m.pool.Close()
	})
}

func (m *Manager) getHandler() ErrorHandler {
	m.handlerMu.RLock()
	defer m.handlerMu.RUnlock()
	return m.handler
}

func (m *Manager) routeError(err error) {
	if handler := m.getHandler(); handler != nil {
		handler(err)
	}
}
