package logger

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"logency/dispatch"
	"logency/logerr"
	"logency/record"
	"logency/workerpool"
)

type fakeModule struct {
	mu      sync.Mutex
	written []record.Record
}

func (m *fakeModule) Write(loggerName string, rec record.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.written = append(m.written, rec)
	return nil
}

func (m *fakeModule) Flush() error { return nil }

func (m *fakeModule) snapshot() []record.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]record.Record, len(m.written))
	copy(out, m.written)
	return out
}

func TestLoggerLogFailsOnceDestroyed(t *testing.T) {
	pool, err := workerpool.New(1)
	if err != nil {
		t.Fatalf("workerpool.New: %v", err)
	}
	defer pool.Close()

	d := dispatch.New(pool, 0)
	l := New("app", d)

	l.MarkDestroyed()

	err = l.log(record.New(record.Info, "hi"))
	if err == nil {
		t.Fatalf("Log on destroyed logger should fail")
	}
	if !errors.Is(err, logerr.ErrDestroyed) {
		t.Fatalf("error %v should wrap logerr.ErrDestroyed", err)
	}
}

func TestLoggerFilterDropsSilently(t *testing.T) {
	pool, err := workerpool.New(1)
	if err != nil {
		t.Fatalf("workerpool.New: %v", err)
	}
	defer pool.Close()

	d := dispatch.New(pool, 0)
	l := New("app", d)
	l.SetFilter(func(loggerName string, rec record.Record) bool { return false })

	if err := l.Log(record.New(record.Info, "dropped")); err != nil {
		t.Fatalf("filtered Log should not error: %v", err)
	}
}

func TestLoggerAddSinkRejectsDuplicate(t *testing.T) {
	pool, err := workerpool.New(1)
	if err != nil {
		t.Fatalf("workerpool.New: %v", err)
	}
	defer pool.Close()

	d := dispatch.New(pool, 0)
	l := New("app", d)
	mod := &fakeModule{}

	s, err := newTestSink(t, mod, pool)
	if err != nil {
		t.Fatalf("newTestSink: %v", err)
	}

	if err := l.AddSink(s); err != nil {
		t.Fatalf("first AddSink: %v", err)
	}
	if err := l.AddSink(s); err == nil {
		t.Fatalf("duplicate AddSink should fail")
	}
}

func TestLoggerEndToEndDeliversToSink(t *testing.T) {
	pool, err := workerpool.New(2)
	if err != nil {
		t.Fatalf("workerpool.New: %v", err)
	}
	defer pool.Close()

	d := dispatch.New(pool, 0)
	l := New("app", d)
	mod := &fakeModule{}

	s, err := newTestSink(t, mod, pool)
	if err != nil {
		t.Fatalf("newTestSink: %v", err)
	}
	if err := l.AddSink(s); err != nil {
		t.Fatalf("AddSink: %v", err)
	}

	const n = 200
	for i := 0; i < n; i++ {
		if err := l.Log(record.New(record.Info, fmt.Sprintf("%d", i))); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	deadline := time.After(2 * time.Second)
	for {
		if len(mod.snapshot()) == n {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("got %d of %d records delivered", len(mod.snapshot()), n)
		case <-time.After(10 * time.Millisecond):
		}
	}

	got := mod.snapshot()
	for i, rec := range got {
		if rec.Content != fmt.Sprintf("%d", i) {
			t.Fatalf("record %d: content %q, want %q (production order not preserved)", i, rec.Content, fmt.Sprintf("%d", i))
		}
	}
}

// TestLoggerFanOutToTwoSinks covers the scenario where a single logger has
// two sinks attached: both must receive exactly one write of the same
// record.
func TestLoggerFanOutToTwoSinks(t *testing.T) {
	pool, err := workerpool.New(2)
	if err != nil {
		t.Fatalf("workerpool.New: %v", err)
	}
	defer pool.Close()

	d := dispatch.New(pool, 0)
	l := New("app", d)

	first := &fakeModule{}
	second := &fakeModule{}

	sinkOne, err := newTestSink(t, first, pool)
	if err != nil {
		t.Fatalf("newTestSink: %v", err)
	}
	sinkTwo, err := newTestSink(t, second, pool)
	if err != nil {
		t.Fatalf("newTestSink: %v", err)
	}
	if err := l.AddSink(sinkOne); err != nil {
		t.Fatalf("AddSink first: %v", err)
	}
	if err := l.AddSink(sinkTwo); err != nil {
		t.Fatalf("AddSink second: %v", err)
	}

	if err := l.Log(record.New(record.Info, "m")); err != nil {
		t.Fatalf("Log: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		if len(first.snapshot()) == 1 && len(second.snapshot()) == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("got %d/%d writes on the two sinks, want 1/1", len(first.snapshot()), len(second.snapshot()))
		case <-time.After(10 * time.Millisecond):
		}
	}

	if got := first.snapshot()[0].Content; got != "m" {
		t.Fatalf("first sink content = %q, want %q", got, "m")
	}
	if got := second.snapshot()[0].Content; got != "m" {
		t.Fatalf("second sink content = %q, want %q", got, "m")
	}
}

// TestLoggerPerLoggerOrderAcrossConcurrentProducers covers multiple
// goroutines logging to the same Logger concurrently: each producer's own
// sequence must still arrive at the sink in the order that producer
// generated it, even though producers interleave with each other.
func TestLoggerPerLoggerOrderAcrossConcurrentProducers(t *testing.T) {
	pool, err := workerpool.New(4)
	if err != nil {
		t.Fatalf("workerpool.New: %v", err)
	}
	defer pool.Close()

	d := dispatch.New(pool, 0)
	l := New("app", d)
	mod := &fakeModule{}

	s, err := newTestSink(t, mod, pool)
	if err != nil {
		t.Fatalf("newTestSink: %v", err)
	}
	if err := l.AddSink(s); err != nil {
		t.Fatalf("AddSink: %v", err)
	}

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if err := l.Log(record.New(record.Info, fmt.Sprintf("%d:%d", p, i))); err != nil {
					t.Errorf("Log: %v", err)
				}
			}
		}(p)
	}
	wg.Wait()

	want := producers * perProducer
	deadline := time.After(2 * time.Second)
	for {
		if len(mod.snapshot()) == want {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("got %d of %d records delivered", len(mod.snapshot()), want)
		case <-time.After(10 * time.Millisecond):
		}
	}

	lastSeen := make([]int, producers)
	for i := range lastSeen {
		lastSeen[i] = -1
	}
	for _, rec := range mod.snapshot() {
		var p, seq int
		if _, err := fmt.Sscanf(rec.Content, "%d:%d", &p, &seq); err != nil {
			t.Fatalf("parsing record content %q: %v", rec.Content, err)
		}
		if seq <= lastSeen[p] {
			t.Fatalf("producer %d: sequence %d arrived after %d, production order not preserved", p, seq, lastSeen[p])
		}
		lastSeen[p] = seq
	}
	for p, last := range lastSeen {
		if last != perProducer-1 {
			t.Fatalf("producer %d: last sequence seen %d, want %d", p, last, perProducer-1)
		}
	}
}

func TestLoggerDeleteSinkFailsWhenMissing(t *testing.T) {
	pool, err := workerpool.New(1)
	if err != nil {
		t.Fatalf("workerpool.New: %v", err)
	}
	defer pool.Close()

	d := dispatch.New(pool, 0)
	l := New("app", d)

	if err := l.DeleteSink("nope"); err == nil {
		t.Fatalf("DeleteSink for missing name should fail")
	}
}
