// Package sink implements the per-destination delivery stage: a queue of
// envelopes bound for one backend (Module), drained on the shared worker
// pool with its own filter and flush policy.
package sink

import (
	"sync"

	"logency/bulkqueue"
	"logency/record"
	"logency/workerpool"
)

// Module is the backend interface a Sink writes through. Every module/*
// package implements it.
type Module interface {
	// Write renders and emits one record attributed to loggerName.
	Write(loggerName string, rec record.Record) error
	// Flush forces durability/visibility of everything written so far.
	Flush() error
}

// Filter decides whether a record should reach the backend at all.
type Filter func(loggerName string, rec record.Record) bool

// Flusher decides whether a just-written record should trigger Module.Flush.
type Flusher func(loggerName string, rec record.Record) bool

// ErrorHandler receives an error raised while draining a Sink's queue.
type ErrorHandler func(err error)

// Sink owns one backend Module exclusively and feeds it records from
// whichever loggers have this Sink attached.
type Sink struct {
	name   string
	module Module
	pool   *workerpool.Pool

	queue *bulkqueue.Queue[record.Envelope]

	operateMu sync.Mutex
	tray      []record.Envelope

	mu      sync.RWMutex
	filter  Filter
	flusher Flusher
	handler ErrorHandler

	closeOnce sync.Once

	retryHook func()
}

// SetRetryHook installs a callback invoked every time a failed drain
// reschedules itself to retry its residue.
func (s *Sink) SetRetryHook(hook func()) {
	s.retryHook = hook
}

// New builds a Sink named name that writes through module, scheduling its
// drain tasks on pool. module must be non-nil.
func New(name string, module Module, pool *workerpool.Pool, reserve int) (*Sink, error) {
	if module == nil {
		return nil, errNilModule(name)
	}
	return &Sink{
		name:   name,
		module: module,
		pool:   pool,
		queue:  bulkqueue.New[record.Envelope](reserve),
	}, nil
}

// Name returns the sink's registered name.
func (s *Sink) Name() string { return s.name }
