package acceptor

import (
	"time"

	"github.com/dialogs/dialog-acceptor/worker"
)

// Metrics of the accept loop and the pool it feeds
type Metrics interface {
	worker.Metrics

	IncAccepted()
	IncReadErrors()
	IncSinkErrors()
}

type nopMetrics struct{}

func (nopMetrics) IncEnqueued()              {}
func (nopMetrics) IncProcessed()             {}
func (nopMetrics) SetQueueDepth(int)         {}
func (nopMetrics) ObserveWait(time.Duration) {}
func (nopMetrics) IncAccepted()              {}
func (nopMetrics) IncReadErrors()            {}
func (nopMetrics) IncSinkErrors()            {}
