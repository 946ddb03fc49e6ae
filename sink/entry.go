package sink

import "logency/record"

// SetFilter installs the predicate deciding whether a record is queued at
// all. A nil filter accepts everything.
func (s *Sink) SetFilter(filter Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

// SetFlusher installs the predicate deciding whether a just-written record
// triggers Module.Flush. A nil flusher never flushes.
func (s *Sink) SetFlusher(flusher Flusher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flusher = flusher
}

// SetErrorHandler installs the callback invoked when the drain task fails.
func (s *Sink) SetErrorHandler(handler ErrorHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
}

// Log splits envelopes at every element the installed filter rejects and
// bulk-enqueues each surviving sub-range. If any enqueue transitions the
// queue from empty, a drain task is scheduled on the pool.
func (s *Sink) Log(envelopes []record.Envelope) error {
	if s.pool == nil {
		return poolGone(s.name)
	}

	filter := s.getFilter()
	needsSchedule := false

	i, n := 0, len(envelopes)
	for i < n {
		if filter != nil && !filter(loggerNameOf(envelopes[i]), envelopes[i].Record) {
			i++
			continue
		}
		j := i + 1
		for j < n && (filter == nil || filter(loggerNameOf(envelopes[j]), envelopes[j].Record)) {
			j++
		}
		if s.queue.EnqueueBulk(envelopes[i:j]) {
			needsSchedule = true
		}
		i = j
	}

	if needsSchedule {
		return s.scheduleTask()
	}
	return nil
}

// Close flushes the backing module before the sink is discarded. Per the
// destructor policy, a flush failure is routed through the error handler
// instead of being returned, so teardown never unwinds on an I/O error.
func (s *Sink) Close() {
	s.closeOnce.Do(func() {
		if err := s.module.Flush(); err != nil {
			s.reportError(err)
		}
	})
}

func (s *Sink) getFilter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *Sink) getFlusher() Flusher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flusher
}

func (s *Sink) reportError(err error) {
	s.mu.RLock()
	handler := s.handler
	s.mu.RUnlock()
	if handler != nil {
		handler(err)
	}
}

func (s *Sink) scheduleTask() error {
	return s.pool.Enqueue(func() error { return s.runDrain() })
}

func (s *Sink) reschedule() {
	if s.pool == nil {
		return
	}
	if s.retryHook != nil {
		s.retryHook()
	}
	_ = s.pool.Enqueue(func() error { return s.runDrain() })
}

// runDrain is the task body scheduled onto the worker pool.
func (s *Sink) runDrain() error {
	s.operateMu.Lock()
	defer s.operateMu.Unlock()

	if len(s.tray) > 0 {
		if err := s.walkAndConsume(); err != nil {
			s.reschedule()
			return err
		}
	}

	if ok := s.queue.TrySwapBulk(&s.tray); !ok {
		return nil
	}

	if err := s.walkAndConsume(); err != nil {
		s.reschedule()
		return err
	}

	s.tray = s.tray[:0]
	return nil
}

// walkAndConsume writes every envelope in the tray to the module. On the
// first write/flush failure the failing envelope itself is dropped along
// with everything before it; only the tail survives as residue for the
// next drain task.
func (s *Sink) walkAndConsume() error {
	flusher := s.getFlusher()

	for i, env := range s.tray {
		name := loggerNameOf(env)

		if err := s.module.Write(name, env.Record); err != nil {
			s.tray = s.tray[i+1:]
			s.reportError(err)
			return err
		}

		if flusher != nil && flusher(name, env.Record) {
			if err := s.module.Flush(); err != nil {
				s.tray = s.tray[i+1:]
				s.reportError(err)
				return err
			}
		}
	}

	s.tray = s.tray[:0]
	return nil
}

func loggerNameOf(env record.Envelope) string {
	if env.LoggerName == nil {
		return ""
	}
	return *env.LoggerName
}
