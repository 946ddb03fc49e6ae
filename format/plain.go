package format

import (
	"fmt"
	"strings"

	"logency/record"
)

// PlainFormatter renders "<time> [<level>] <logger>: <content>\n" and
// exposes that same text as a single uncolored segment.
type PlainFormatter struct {
	// TimeLayout is passed to time.Time.Format. Empty uses a fixed
	// millisecond-precision layout.
	TimeLayout string
}

const defaultTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// NewPlain returns a PlainFormatter using the default time layout.
func NewPlain() *PlainFormatter {
	return &PlainFormatter{}
}

func (f *PlainFormatter) layout() string {
	if f.TimeLayout != "" {
		return f.TimeLayout
	}
	return defaultTimeLayout
}

// Format renders the record as plain text.
func (f *PlainFormatter) Format(loggerName string, rec record.Record) []byte {
	var b strings.Builder
	b.WriteString(rec.Time.Format(f.layout()))
	b.WriteString(" [")
	b.WriteString(rec.Level.String())
	b.WriteString("] ")
	if loggerName != "" {
		fmt.Fprintf(&b, "%s: ", loggerName)
	}
	b.WriteString(rec.Content)
	b.WriteByte('\n')
	return []byte(b.String())
}

// Segments returns the plain rendering as one uncolored segment.
func (f *PlainFormatter) Segments(loggerName string, rec record.Record) []Segment {
	return []Segment{{
		Bytes:      f.Format(loggerName, rec),
		Foreground: ColorDefault,
		Background: ColorDefault,
	}}
}
