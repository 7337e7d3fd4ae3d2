package worker

import "time"

// Metrics receives pool events. Queue depth is published on every change.
type Metrics interface {
	IncEnqueued()
	IncProcessed()
	SetQueueDepth(depth int)
	ObserveWait(d time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) IncEnqueued()                {}
func (nopMetrics) IncProcessed()               {}
func (nopMetrics) SetQueueDepth(int)           {}
func (nopMetrics) ObserveWait(_ time.Duration) {}
