package dispatch

import "logency/record"

// Enqueue appends (target, envelope) to the staging queue. If the queue
// transitioned from empty it schedules a drain task on the worker pool.
func (d *Dispatcher) Enqueue(target Target, envelope record.Envelope) error {
	if d.pool == nil {
		return poolGone()
	}

	wasEmpty := d.queue.Enqueue(target, envelope)
	if wasEmpty {
		return d.schedule()
	}
	return nil
}

// IsQueueEmpty reports whether the staging queue currently holds nothing.
func (d *Dispatcher) IsQueueEmpty() bool { return d.queue.IsEmpty() }

// QueueSize returns the number of pairs currently staged.
func (d *Dispatcher) QueueSize() int { return d.queue.Size() }

// QueueCapacity returns the staging queue's current capacity.
func (d *Dispatcher) QueueCapacity() int { return d.queue.Capacity() }

// Reserve grows the staging queue's capacity to at least n.
func (d *Dispatcher) Reserve(n int) { d.queue.Reserve(n) }

// ShrinkToFit releases staging queue capacity beyond its current length.
func (d *Dispatcher) ShrinkToFit() { d.queue.ShrinkToFit() }

func (d *Dispatcher) schedule() error {
	return d.pool.Enqueue(func() error { return d.runDispatch() })
}

// runDispatch is the task body scheduled onto the worker pool. It is never
// called concurrently with itself: operateMu enforces that only one drain
// for this dispatcher is ever in flight.
func (d *Dispatcher) runDispatch() error {
	d.operateMu.Lock()
	defer d.operateMu.Unlock()

	if len(d.tray) > 0 {
		if err := d.walkAndTrim(); err != nil {
			d.reschedule()
			return err
		}
	}

	if ok := d.queue.TrySwapBulk(&d.tray, &d.trayEnv); !ok {
		return nil
	}

	if err := d.walkAndTrim(); err != nil {
		d.reschedule()
		return err
	}

	d.tray = d.tray[:0]
	d.trayEnv = d.trayEnv[:0]
	return nil
}

// walkAndTrim groups the tray into maximal runs of consecutive envelopes
// destined for the same target and delivers each run. On the first
// delivery error it trims the tray down to the failing item onward (the
// residue a later dispatch task will retry) and returns the error.
func (d *Dispatcher) walkAndTrim() error {
	i, n := 0, len(d.tray)
	for i < n {
		j := i + 1
		target := d.tray[i]
		for j < n && d.tray[j] == target {
			j++
		}
		if err := target.DeliverToSinks(d.trayEnv[i:j]); err != nil {
			d.tray = d.tray[i:]
			d.trayEnv = d.trayEnv[i:]
			return err
		}
		i = j
	}
	d.tray = d.tray[:0]
	d.trayEnv = d.trayEnv[:0]
	return nil
}

func (d *Dispatcher) reschedule() {
	if d.pool == nil {
		return
	}
	if d.retryHook != nil {
		d.retryHook()
	}
	_ = d.pool.Enqueue(func() error { return d.runDispatch() })
}
