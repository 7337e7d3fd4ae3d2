package qosmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dialogs/dialog-acceptor/metric"
)

// Metrics of the acceptor and its worker pool
type Metrics struct {
	enqueued   metric.ICounter
	processed  metric.ICounter
	accepted   metric.ICounter
	readErrors metric.ICounter
	sinkErrors metric.ICounter
	queueDepth metric.IGauge
	jobWait    metric.IObserver
}

// New creates prometheus collectors and registers them
func New(nameSpace string, reg prometheus.Registerer) (*Metrics, error) {

	enqueued := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: nameSpace,
		Name:      "jobs_enqueued_total",
		Help:      "Jobs pushed to the worker pool queue",
	})

	processed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: nameSpace,
		Name:      "jobs_processed_total",
		Help:      "Jobs completed by pool workers",
	})

	accepted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: nameSpace,
		Name:      "connections_accepted_total",
		Help:      "Accepted client connections",
	})

	readErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: nameSpace,
		Name:      "read_errors_total",
		Help:      "Failed request reads on accepted connections",
	})

	sinkErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: nameSpace,
		Name:      "sink_errors_total",
		Help:      "Failed request log writes",
	})

	queueDepth := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: nameSpace,
		Name:      "queue_depth",
		Help:      "Jobs waiting in the unbounded worker pool queue",
	})

	jobWait := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: nameSpace,
		Name:      "job_wait_seconds",
		Help:      "Time between enqueue and the start of job processing",
		Buckets:   prometheus.DefBuckets,
	})

	for _, c := range []prometheus.Collector{
		enqueued, processed, accepted, readErrors, sinkErrors, queueDepth, jobWait,
	} {
		if err := ProcessPrometheusError(reg.Register(c)); err != nil {
			return nil, err
		}
	}

	return &Metrics{
		enqueued:   enqueued,
		processed:  processed,
		accepted:   accepted,
		readErrors: readErrors,
		sinkErrors: sinkErrors,
		queueDepth: queueDepth,
		jobWait:    jobWait,
	}, nil
}

func (m *Metrics) IncEnqueued()          { m.enqueued.Inc() }
func (m *Metrics) IncProcessed()         { m.processed.Inc() }
func (m *Metrics) IncAccepted()          { m.accepted.Inc() }
func (m *Metrics) IncReadErrors()        { m.readErrors.Inc() }
func (m *Metrics) IncSinkErrors()        { m.sinkErrors.Inc() }
func (m *Metrics) SetQueueDepth(val int) { m.queueDepth.Set(float64(val)) }

func (m *Metrics) ObserveWait(d time.Duration) {
	m.jobWait.Observe(d.Seconds())
}

// ProcessPrometheusError skips a repeated registration of the same collector
func ProcessPrometheusError(err error) error {
	if err == nil {
		return nil
	}

	switch err.(type) {
	case prometheus.AlreadyRegisteredError:
		return nil
	default:
		return err
	}
}
