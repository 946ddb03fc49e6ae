package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func gaugeValue(t *testing.T, g interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return m.GetGauge().GetValue()
}

func TestNewRegistersAllCollectors(t *testing.T) {
	depth := 3.0
	c, err := New(func() float64 { return depth }, func() float64 { return 0 })
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := gaugeValue(t, c.DispatchQueueDepth); got != 3.0 {
		t.Fatalf("dispatch queue depth = %v, want 3", got)
	}

	depth = 7.0
	if got := gaugeValue(t, c.DispatchQueueDepth); got != 7.0 {
		t.Fatalf("dispatch queue depth after change = %v, want 7 (should be pulled live)", got)
	}
}

func TestSinkRetryHookIncrementsLabeledCounter(t *testing.T) {
	c, err := New(func() float64 { return 0 }, func() float64 { return 0 })
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	hook := c.SinkRetryHook("file-sink")
	hook()
	hook()

	var m dto.Metric
	if err := c.SinkRetries.WithLabelValues("file-sink").Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := m.GetCounter().GetValue(); got != 2 {
		t.Fatalf("counter = %v, want 2", got)
	}
}

func TestDispatchRetryHookIncrementsCounter(t *testing.T) {
	c, err := New(func() float64 { return 0 }, func() float64 { return 0 })
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	hook := c.DispatchRetryHook()
	hook()

	var m dto.Metric
	if err := c.DispatchRetries.Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := m.GetCounter().GetValue(); got != 1 {
		t.Fatalf("counter = %v, want 1", got)
	}
}
