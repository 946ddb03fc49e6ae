package console

import "sync"

// Mutex is anything usable to serialize writes across every console
// backend in a process. Lock/Unlock satisfy sync.Locker.
type Mutex interface {
	Lock()
	Unlock()
}

// sharedMutex is the process-global lock every console backend defaults
// to, so interleaved writes from multiple sinks targeting stdout/stderr
// never tear mid-line.
var sharedMutex sync.Mutex

// SharedMutex returns the process-wide console mutex.
func SharedMutex() Mutex { return &sharedMutex }

// nullMutex is a no-op Mutex for single-threaded deployments that don't
// need (and don't want to pay for) cross-backend serialization.
type nullMutex struct{}

func (nullMutex) Lock()   {}
func (nullMutex) Unlock() {}

// NullMutex returns a Mutex whose Lock/Unlock do nothing.
func NullMutex() Mutex { return nullMutex{} }
