package logger

import (
	"testing"

	"logency/sink"
	"logency/workerpool"
)

func newTestSink(t *testing.T, mod sink.Module, pool *workerpool.Pool) (*sink.Sink, error) {
	t.Helper()
	return sink.New("test-sink", mod, pool, 0)
}
