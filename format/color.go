package format

import (
	"fmt"

	"logency/record"
)

// ColorFormatter renders the same text as PlainFormatter but splits it into
// segments so a console backend can color the level tag according to
// severity while leaving the rest of the line at the terminal's default.
type ColorFormatter struct {
	Plain *PlainFormatter
}

// NewColor returns a ColorFormatter built on a default PlainFormatter.
func NewColor() *ColorFormatter {
	return &ColorFormatter{Plain: NewPlain()}
}

// Format renders the record as plain text, ignoring color.
func (f *ColorFormatter) Format(loggerName string, rec record.Record) []byte {
	return f.Plain.Format(loggerName, rec)
}

// Segments splits the rendering into a default-colored timestamp, a
// severity-colored level tag, and a default-colored logger name + content.
func (f *ColorFormatter) Segments(loggerName string, rec record.Record) []Segment {
	levelColor := colorForLevel(rec.Level)

	timestamp := rec.Time.Format(f.Plain.layout())
	levelTag := fmt.Sprintf("[%s]", rec.Level.String())

	tail := " "
	if loggerName != "" {
		tail += loggerName + ": "
	}
	tail += rec.Content + "\n"

	return []Segment{
		{Bytes: []byte(timestamp + " "), Foreground: ColorDefault, Background: ColorDefault},
		{Bytes: []byte(levelTag), Foreground: levelColor.foreground, Background: levelColor.background},
		{Bytes: []byte(tail), Foreground: ColorDefault, Background: ColorDefault},
	}
}
