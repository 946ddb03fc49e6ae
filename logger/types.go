// Package logger implements the producer-facing façade: the type callers
// actually hold and call Log on. A Logger owns no queue of its own; it
// forwards each record to the shared Dispatcher and fans successfully
// dispatched runs out to its attached sinks.
package logger

import (
	"sync"
	"sync/atomic"

	"logency/dispatch"
	"logency/record"
	"logency/sink"
)

// Filter decides whether a record should be dispatched at all.
type Filter func(loggerName string, rec record.Record) bool

// ErrorHandler receives an error raised while logging or dispatching.
type ErrorHandler func(err error)

// Logger is the type producers call Log on.
type Logger struct {
	name       string
	namePtr    *string
	dispatcher *dispatch.Dispatcher

	destroyed atomic.Bool

	sinkMu sync.RWMutex
	sinks  []*sink.Sink

	mu      sync.RWMutex
	filter  Filter
	handler ErrorHandler
}

// New returns a Logger named name that dispatches through dispatcher.
// dispatcher is held as a plain pointer, the Go analogue of the weak
// reference a logger holds onto its manager's dispatcher.
func New(name string, dispatcher *dispatch.Dispatcher) *Logger {
	return &Logger{
		name:       name,
		namePtr:    &name,
		dispatcher: dispatcher,
	}
}

// Name returns the logger's registered name.
func (l *Logger) Name() string { return l.name }
