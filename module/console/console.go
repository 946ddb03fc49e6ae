// Package console implements sink.Module against os.Stdout/os.Stderr (or
// any io.Writer), optionally rendering ANSI color from a format.Formatter's
// segments and serializing writes through a process-wide Mutex so two
// console sinks never interleave mid-line.
package console

import (
	"io"
	"os"

	"golang.org/x/term"

	"logency/format"
	"logency/record"
)

// ColorMode selects whether Write renders ANSI escapes.
type ColorMode int

const (
	// ColorOn always renders ANSI escapes.
	ColorOn ColorMode = iota
	// ColorOff never renders ANSI escapes, regardless of terminal support.
	ColorOff
	// ColorAutomatic renders ANSI escapes iff the underlying writer is a
	// terminal that accepts color, detected via golang.org/x/term.
	ColorAutomatic
)

// Module is a console-backed sink.Module.
type Module struct {
	formatter format.Formatter
	writer    io.Writer
	mutex     Mutex
	mode      ColorMode

	resolvedColor bool
}

// New returns a Module writing through formatter to writer, serialized by
// mutex (use SharedMutex() for the common case, NullMutex() for a
// single-threaded deployment that doesn't need cross-backend locking).
func New(writer io.Writer, formatter format.Formatter, mutex Mutex, mode ColorMode) *Module {
	m := &Module{
		formatter: formatter,
		writer:    writer,
		mutex:     mutex,
		mode:      mode,
	}
	m.resolvedColor = m.resolveColor()
	return m
}

// Stdout returns a Module writing to os.Stdout under the process-wide
// shared mutex.
func Stdout(formatter format.Formatter, mode ColorMode) *Module {
	return New(os.Stdout, formatter, SharedMutex(), mode)
}

// Stderr returns a Module writing to os.Stderr under the process-wide
// shared mutex.
func Stderr(formatter format.Formatter, mode ColorMode) *Module {
	return New(os.Stderr, formatter, SharedMutex(), mode)
}

func (m *Module) resolveColor() bool {
	switch m.mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		if f, ok := m.writer.(*os.File); ok {
			return term.IsTerminal(int(f.Fd()))
		}
		return false
	}
}

// Write renders rec and writes it under the console mutex. With color
// enabled it renders the formatter's styled segments; otherwise it renders
// the plain byte string.
func (m *Module) Write(loggerName string, rec record.Record) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if !m.resolvedColor {
		_, err := m.writer.Write(m.formatter.Format(loggerName, rec))
		return err
	}

	for _, seg := range m.formatter.Segments(loggerName, rec) {
		if _, err := m.writer.Write(wrap(seg.Bytes, seg.Foreground, seg.Background)); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op for console writers that aren't *os.File, and calls
// Sync for ones that are.
func (m *Module) Flush() error {
	if f, ok := m.writer.(*os.File); ok {
		return f.Sync()
	}
	return nil
}
