// Package file implements sink.Module against a single plain file opened
// in append or truncate mode, with a formatter deciding what bytes a
// record turns into.
package file

import (
	"os"
	"sync"

	"logency/format"
	"logency/internal/filehelper"
	"logency/internal/fsdur"
	"logency/logerr"
	"logency/record"
)

// OpenMode selects how the backing file is opened at construction.
type OpenMode int

const (
	// Append opens (creating if necessary) and writes are appended.
	Append OpenMode = iota
	// Truncate opens (creating if necessary) and discards any existing
	// content first.
	Truncate
)

// Module is a basic file-backed sink.Module. It owns one *os.File
// exclusively for its lifetime.
type Module struct {
	formatter format.Formatter

	mu   sync.Mutex
	file *os.File
}

// New opens path under mode and returns a Module that writes through
// formatter.
func New(path string, mode OpenMode, formatter format.Formatter) (*Module, error) {
	if err := filehelper.EnsureParentDir(path); err != nil {
		return nil, logerr.NewSystemError("creating parent directory for "+path, err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if mode == Truncate {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, logerr.NewSystemError("opening "+path, err)
	}

	return &Module{formatter: formatter, file: f}, nil
}

// Write renders rec through the formatter and appends it to the file.
func (m *Module) Write(loggerName string, rec record.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.file.Write(m.formatter.Format(loggerName, rec)); err != nil {
		return logerr.NewSystemError("writing to "+m.file.Name(), err)
	}
	return nil
}

// Flush fsyncs the file so previously written bytes survive a crash.
func (m *Module) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fsdur.Sync(m.file)
}

// Close releases the underlying file descriptor. It is not part of
// sink.Module; callers that own the Module directly (outside a Sink) call
// it during their own teardown.
func (m *Module) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.file.Close()
}
