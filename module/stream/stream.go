// Package stream implements sink.Module against an arbitrary io.Writer,
// for destinations that are neither a plain file nor the console (an
// in-memory buffer, a pipe, a caller-supplied network connection).
package stream

import (
	"io"

	"logency/format"
	"logency/record"
)

// Module writes through an io.Writer. If the writer also has a Sync() error
// method, Flush calls Sync; otherwise Flush is a no-op, since an arbitrary io.Writer has no durability contract of its
// own.
type Module struct {
	formatter format.Formatter
	writer    io.Writer
}

type syncer interface {
	Sync() error
}

// New returns a Module writing rendered records to writer via formatter.
func New(writer io.Writer, formatter format.Formatter) *Module {
	return &Module{formatter: formatter, writer: writer}
}

// Write renders rec and writes it to the underlying writer.
func (m *Module) Write(loggerName string, rec record.Record) error {
	_, err := m.writer.Write(m.formatter.Format(loggerName, rec))
	return err
}

// Flush calls Sync on the underlying writer if it implements one.
func (m *Module) Flush() error {
	if s, ok := m.writer.(syncer); ok {
		return s.Sync()
	}
	return nil
}
