package qosmetrics

import (
	"github.com/dialogs/dialog-acceptor/metric/mock"
)

// MockMetric exposes the in-memory collectors behind Metrics
type MockMetric struct {
	*Metrics

	EnqueuedCounter   *mock.Counter
	ProcessedCounter  *mock.Counter
	AcceptedCounter   *mock.Counter
	ReadErrorsCounter *mock.Counter
	SinkErrorsCounter *mock.Counter
	QueueDepthGauge   *mock.Gauge
	WaitObserver      *mock.Observer
}

func NewMockMetric() *MockMetric {

	m := &MockMetric{
		EnqueuedCounter:   mock.NewCounter(),
		ProcessedCounter:  mock.NewCounter(),
		AcceptedCounter:   mock.NewCounter(),
		ReadErrorsCounter: mock.NewCounter(),
		SinkErrorsCounter: mock.NewCounter(),
		QueueDepthGauge:   mock.NewGauge(),
		WaitObserver:      mock.NewObserver(),
	}

	m.Metrics = &Metrics{
		enqueued:   m.EnqueuedCounter,
		processed:  m.ProcessedCounter,
		accepted:   m.AcceptedCounter,
		readErrors: m.ReadErrorsCounter,
		sinkErrors: m.SinkErrorsCounter,
		queueDepth: m.QueueDepthGauge,
		jobWait:    m.WaitObserver,
	}

	return m
}
