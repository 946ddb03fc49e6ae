package logger

import (
	"logency/logerr"
	"logency/record"
	"logency/sink"
)

// Log constructs an envelope from rec and enqueues it onto the dispatcher.
// Errors are routed to the installed error handler if one exists;
// otherwise they are returned to the caller.
func (l *Logger) Log(rec record.Record) error {
	err := l.log(rec)
	if err == nil {
		return nil
	}

	handler := l.getHandler()
	if handler != nil {
		handler(err)
		return nil
	}
	return err
}

func (l *Logger) log(rec record.Record) error {
	if l.destroyed.Load() {
		return logerr.Destroyed("logger %q: use of a destroyed logger", l.name)
	}
	if l.dispatcher == nil {
		return logerr.ResourceGone("logger %q: dispatcher is gone", l.name)
	}

	if filter := l.getFilter(); filter != nil && !filter(l.name, rec) {
		return nil
	}

	env := record.Envelope{LoggerName: l.namePtr, Record: rec}
	return l.dispatcher.Enqueue(l, env)
}

// SetFilter installs the predicate deciding whether a record reaches the
// dispatcher at all. A nil filter accepts everything.
func (l *Logger) SetFilter(filter Filter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter = filter
}

// SetErrorHandler installs the callback invoked when Log fails.
func (l *Logger) SetErrorHandler(handler ErrorHandler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handler = handler
}

func (l *Logger) getFilter() Filter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filter
}

func (l *Logger) getHandler() ErrorHandler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.handler
}

// MarkDestroyed flips the destroyed flag, after which every Log call fails.
// Records already dispatched before this call still reach their sinks.
func (l *Logger) MarkDestroyed() {
	l.destroyed.Store(true)
}

// AddSink attaches s to the logger. Duplicate attachment (by reference
// equality) is rejected.
func (l *Logger) AddSink(s *sink.Sink) error {
	l.sinkMu.Lock()
	defer l.sinkMu.Unlock()

	for _, existing := range l.sinks {
		if existing == s {
			return logerr.InvalidArgument("logger %q: sink %q already attached", l.name, s.Name())
		}
	}
	l.sinks = append(l.sinks, s)
	return nil
}

// DeleteSink detaches the sink named name. It fails if no sink with that
// name is attached.
func (l *Logger) DeleteSink(name string) error {
	l.sinkMu.Lock()
	defer l.sinkMu.Unlock()

	for i, s := range l.sinks {
		if s.Name() == name {
			l.sinks = append(l.sinks[:i], l.sinks[i+1:]...)
			return nil
		}
	}
	return logerr.InvalidArgument("logger %q: no sink named %q attached", l.name, name)
}

// FindSink returns the attached sink named name, or nil if none matches.
func (l *Logger) FindSink(name string) *sink.Sink {
	l.sinkMu.RLock()
	defer l.sinkMu.RUnlock()

	for _, s := range l.sinks {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// DeliverToSinks fans envelopes out to every attached sink under the
// logger's sink mutex, implementing dispatch.Target. It returns the first
// error any sink reports but still offers the run to every sink.
func (l *Logger) DeliverToSinks(envelopes []record.Envelope) error {
	l.sinkMu.RLock()
	defer l.sinkMu.RUnlock()

	var firstErr error
	for _, s := range l.sinks {
		if err := s.Log(envelopes); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
