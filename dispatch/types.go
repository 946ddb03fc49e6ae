// Package dispatch fans envelopes out from producers to the loggers that
// own them. A Dispatcher is shared by every logger created under one
// manager: producers append cheaply under a queue mutex, and a single
// self-scheduled drain task walks the staged tray in logger-identity runs so
// each logger's sinks see its records in production order.
package dispatch

import (
	"sync"

	"logency/bulkqueue"
	"logency/record"
	"logency/workerpool"
)

// Target is anything a Dispatcher can deliver a run of envelopes to. It is
// implemented by logger.Logger; dispatch never imports logger so the two
// packages avoid a cycle, and run-length grouping is done by ordinary Go
// pointer-equality on the Target interface value.
type Target interface {
	DeliverToSinks(envelopes []record.Envelope) error
}

// Dispatcher holds the pending (target, envelope) pairs for every logger
// under one manager and drains them on a shared worker pool.
type Dispatcher struct {
	pool *workerpool.Pool

	queue *bulkqueue.PairQueue[Target, record.Envelope]

	operateMu sync.Mutex
	tray      []Target
	trayEnv   []record.Envelope

	retryHook func()
}

// SetRetryHook installs a callback invoked every time a failed dispatch
// reschedules itself to retry its residue. It exists so the metrics
// package can count retries without the dispatcher importing it.
func (d *Dispatcher) SetRetryHook(hook func()) {
	d.retryHook = hook
}

// New returns a Dispatcher that schedules its drain tasks on pool. pool is
// held as a plain pointer, the Go analogue of the weak reference the design
// uses to avoid the dispatcher keeping the pool alive on its own.
func New(pool *workerpool.Pool, reserve int) *Dispatcher {
	return &Dispatcher{
		pool:  pool,
		queue: bulkqueue.NewPair[Target, record.Envelope](reserve),
	}
}
