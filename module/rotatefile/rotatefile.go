// Package rotatefile implements sink.Module against a base file that
// rotates into a numbered archive chain once it would grow past a size
// limit: X.ext, X-1.ext, ..., X-N.ext, with X-(N-1) overwriting X-N on
// every rotation.
package rotatefile

import (
	"fmt"
	"os"
	"sync"

	"logency/format"
	"logency/internal/filehelper"
	"logency/internal/fsdur"
	"logency/logerr"
	"logency/record"
)

// ConstructMode selects how the base file is opened when a Module is
// first constructed, independent of rotation behavior afterward.
type ConstructMode int

const (
	// AppendPrevious opens any existing base file in append mode and only
	// rotates it at construction if it is already at or over MaxFileBytes.
	AppendPrevious ConstructMode = iota
	// CreateNewFile archives any existing base file at construction,
	// the same way a mid-run rotation would, and starts a fresh one.
	CreateNewFile
)

// Info describes the rotation policy: rotate once current size plus the
// next write would reach MaxFileBytes, keeping at most ArchiveCount
// numbered archives.
type Info struct {
	MaxFileBytes uint64
	ArchiveCount int32
}

// Module is a rotating-file-backed sink.Module.
type Module struct {
	formatter format.Formatter
	info      Info

	stem string
	ext  string

	mu          sync.Mutex
	file        *os.File
	currentSize uint64
}

// New opens path under mode with the given rotation info.
func New(path string, mode ConstructMode, info Info, formatter format.Formatter) (*Module, error) {
	if info.MaxFileBytes == 0 {
		return nil, logerr.InvalidArgument("rotatefile %q: max file bytes must be positive", path)
	}
	if info.ArchiveCount <= 0 {
		return nil, logerr.InvalidArgument("rotatefile %q: archive count must be positive", path)
	}
	if err := filehelper.EnsureParentDir(path); err != nil {
		return nil, logerr.NewSystemError("creating parent directory for "+path, err)
	}

	stem, ext := filehelper.SplitExtension(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, logerr.NewSystemError("opening "+path, err)
	}

	var size uint64
	if st, statErr := f.Stat(); statErr == nil {
		size = uint64(st.Size())
	}

	m := &Module{
		formatter:   formatter,
		info:        info,
		stem:        stem,
		ext:         ext,
		file:        f,
		currentSize: size,
	}

	// A freshly created base file never needs rotating. An existing one
	// does if the caller asked for a clean slate (CreateNewFile) or if it
	// was already at/over the limit when this Module was constructed —
	// otherwise the very first Write would have to rotate mid-call with
	// nothing yet written to trigger it.
	if size > 0 && (mode == CreateNewFile || m.currentSize >= m.info.MaxFileBytes) {
		if err := m.rotate(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Module) basePath() string {
	return m.stem + m.ext
}

func (m *Module) archivePath(n int32) string {
	return fmt.Sprintf("%s-%d%s", m.stem, n, m.ext)
}

// Write renders rec through the formatter, rotating the base file first if
// the incoming bytes would bring it to or past MaxFileBytes.
func (m *Module) Write(loggerName string, rec record.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	payload := m.formatter.Format(loggerName, rec)

	if m.currentSize+uint64(len(payload)) >= m.info.MaxFileBytes {
		if err := m.rotate(); err != nil {
			return err
		}
	}

	n, err := m.file.Write(payload)
	if err != nil {
		return logerr.NewSystemError("writing to "+m.basePath(), err)
	}
	m.currentSize += uint64(n)
	return nil
}

// Flush fsyncs the current base file.
func (m *Module) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fsdur.Sync(m.file)
}

// Close releases the current base file's descriptor.
func (m *Module) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.file.Close()
}

// rotate shifts the archive chain up by one slot, overwriting the oldest
// archive, then reopens a fresh base file in append mode.
func (m *Module) rotate() error {
	if err := m.file.Close(); err != nil {
		return logerr.NewSystemError("closing "+m.basePath()+" before rotation", err)
	}

	for n := m.info.ArchiveCount - 1; n >= 1; n-- {
		src := m.archivePath(n)
		dst := m.archivePath(n + 1)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := os.Rename(src, dst); err != nil {
			return logerr.NewSystemError(fmt.Sprintf("rotating %s to %s", src, dst), err)
		}
	}

	if err := os.Rename(m.basePath(), m.archivePath(1)); err != nil && !os.IsNotExist(err) {
		return logerr.NewSystemError("rotating "+m.basePath()+" to archive slot 1", err)
	}

	f, err := os.OpenFile(m.basePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logerr.NewSystemError("reopening "+m.basePath()+" after rotation", err)
	}
	m.file = f
	m.currentSize = 0
	return nil
}
