// Package record defines the producer-facing log unit and the envelope that
// carries it from a logger to its sinks.
package record

import "time"

// Level is the logical severity of a Record, from least to most critical.
type Level uint8

const (
	Trace Level = iota
	Debug
	Info
	Warning
	Error
	Critical
)

var levelNames = [...]string{
	"trace", "debug", "info", "warning", "error", "critical",
}

// String returns the lowercase name of the level, or "unknown" for an
// out-of-range value.
func (l Level) String() string {
	if int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// Record is the producer's in-memory log unit. The core only needs to read
// its severity and timestamp; it never inspects any other field and may
// treat formatting of Content as arbitrarily expensive, deferred work done
// only by a backend that actually needs it.
type Record struct {
	Level   Level
	Time    time.Time
	Content string
}

// New builds a Record stamped with the current time.
func New(level Level, content string) Record {
	return Record{Level: level, Time: time.Now(), Content: content}
}

// Envelope pairs a Record with the shared, immutable name of the logger
// that produced it. LoggerName is a pointer so every envelope fanned out
// from one logger clones the same allocation instead of copying the string.
type Envelope struct {
	LoggerName *string
	Record     Record
}
