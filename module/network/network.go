// Package network implements sink.Module against a beats/Logstash-
// compatible endpoint over the lumberjack protocol, with an optional
// end-to-end encrypted envelope layered underneath the wire protocol
// itself (Seal happens before the bytes are ever handed to the lumberjack
// client, so the encryption is opaque to the receiving beats pipeline —
// it must be paired with a receiver that knows to unwrap it).
package network

import (
	"time"

	lumberjack "github.com/elastic/go-lumber/client/v2"

	"logency/format"
	"logency/logerr"
	"logency/record"
)

// beatsClient is the subset of the lumberjack client's method set this
// module needs. Depending on the dial mode (sync vs async) go-lumber
// returns different concrete client types; accepting the interface instead
// of naming one keeps this module agnostic to which.
type beatsClient interface {
	Send(data []interface{}) (int, error)
	Close() error
}

// Module forwards rendered records to a beats-compatible endpoint.
type Module struct {
	formatter format.Formatter
	client    beatsClient
	encryptor *Encryptor
}

// Option configures a Module at construction.
type Option func(*Module)

// WithEncryptor enables the optional encrypted envelope for every outgoing
// payload.
func WithEncryptor(enc *Encryptor) Option {
	return func(m *Module) { m.encryptor = enc }
}

// New dials endpoint over the lumberjack protocol and returns a Module
// that renders records through formatter before forwarding them.
func New(endpoint string, formatter format.Formatter, opts ...Option) (*Module, error) {
	client, err := lumberjack.SyncDial(endpoint,
		lumberjack.CompressionLevel(3),
		lumberjack.Timeout(3*time.Second),
	)
	if err != nil {
		return nil, logerr.NewSystemError("connecting to beats endpoint "+endpoint, err)
	}

	m := &Module{formatter: formatter, client: client}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Write renders rec, optionally seals it, and sends it as one beats event.
func (m *Module) Write(loggerName string, rec record.Record) error {
	payload := m.formatter.Format(loggerName, rec)

	fields := map[string]any{
		"@timestamp": rec.Time,
		"message":    string(payload),
		"log": map[string]any{
			"level":  rec.Level.String(),
			"logger": loggerName,
		},
	}

	if m.encryptor != nil {
		sealed, err := m.encryptor.Seal(payload)
		if err != nil {
			return err
		}
		fields["message"] = string(sealed)
		fields["log"].(map[string]any)["encrypted"] = true
	}

	if _, err := m.client.Send([]any{fields}); err != nil {
		return logerr.NewSystemError("sending event to beats endpoint", err)
	}
	return nil
}

// Flush is a no-op: the lumberjack client has no separate durability step
// beyond the synchronous acknowledgement SyncDial already waits for on
// every Send.
func (m *Module) Flush() error {
	return nil
}

// Close releases the underlying lumberjack connection.
func (m *Module) Close() error {
	return m.client.Close()
}
