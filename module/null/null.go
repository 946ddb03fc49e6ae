// Package null implements sink.Module as a pure no-op, for disabling a
// sink's output without removing it from a logger's sink list.
package null

import "logency/record"

// Module discards everything it is given.
type Module struct{}

// New returns a no-op Module.
func New() *Module { return &Module{} }

// Write discards rec and always succeeds.
func (*Module) Write(loggerName string, rec record.Record) error { return nil }

// Flush always succeeds.
func (*Module) Flush() error { return nil }
