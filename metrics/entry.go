package metrics

// SinkRetryHook returns a callback suitable for sink.Sink.SetRetryHook that
// increments the named sink's retry counter.
func (c *Collectors) SinkRetryHook(sinkName string) func() {
	counter := c.SinkRetries.WithLabelValues(sinkName)
	return counter.Inc
}

// DispatchRetryHook returns a callback suitable for
// dispatch.Dispatcher.SetRetryHook.
func (c *Collectors) DispatchRetryHook() func() {
	return c.DispatchRetries.Inc
}
