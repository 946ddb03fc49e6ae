package workerpool

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewRejectsZeroSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatalf("New(0) should error")
	}
}

func TestEnqueueRunsTask(t *testing.T) {
	p, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	done := make(chan struct{})
	if err := p.Enqueue(func() error {
		close(done)
		return nil
	}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("task never ran")
	}
}

func TestWaitUntilIdleDrainsLargeBatch(t *testing.T) {
	p, err := New(8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	const n = 65536
	var count atomic.Int64

	for i := 0; i < n; i++ {
		if err := p.Enqueue(func() error {
			count.Add(1)
			return nil
		}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	p.WaitUntilIdle()

	if got := count.Load(); got != n {
		t.Fatalf("completed %d tasks, want %d", got, n)
	}
}

func TestPanicRoutedToErrorHandler(t *testing.T) {
	p, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	recovered := make(chan any, 1)
	p.SetErrorHandler(func(r any, err error) {
		recovered <- r
	})

	if err := p.Enqueue(func() error {
		panic("boom")
	}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	select {
	case r := <-recovered:
		if r != "boom" {
			t.Fatalf("recovered = %v, want boom", r)
		}
	case <-time.After(time.Second):
		t.Fatalf("error handler never invoked")
	}

	p.WaitUntilIdle()
}

func TestErrorReturnRoutedToErrorHandler(t *testing.T) {
	p, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	wantErr := errors.New("task failed")
	reported := make(chan error, 1)
	p.SetErrorHandler(func(r any, err error) {
		reported <- err
	})

	if err := p.Enqueue(func() error {
		return wantErr
	}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	select {
	case err := <-reported:
		if !errors.Is(err, wantErr) {
			t.Fatalf("reported = %v, want %v", err, wantErr)
		}
	case <-time.After(time.Second):
		t.Fatalf("error handler never invoked")
	}
}

func TestEnqueueAfterCloseFails(t *testing.T) {
	p, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.Close()

	if err := p.Enqueue(func() error { return nil }); err == nil {
		t.Fatalf("Enqueue after Close should error")
	}
}

func TestCloseJoinsWorkers(t *testing.T) {
	p, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var ran atomic.Int64
	for i := 0; i < 100; i++ {
		_ = p.Enqueue(func() error {
			ran.Add(1)
			return nil
		})
	}

	p.Close()

	if got := ran.Load(); got != 100 {
		t.Fatalf("ran %d tasks before close, want 100", got)
	}
}
