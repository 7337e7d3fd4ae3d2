package qosmetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {

	reg := prometheus.NewRegistry()

	m, err := New("test", reg)
	require.NoError(t, err)

	m.IncEnqueued()
	m.IncEnqueued()
	m.IncProcessed()
	m.IncAccepted()
	m.IncReadErrors()
	m.IncSinkErrors()
	m.SetQueueDepth(7)
	m.ObserveWait(time.Millisecond)

	require.Equal(t, float64(2), testutil.ToFloat64(m.enqueued.(prometheus.Collector)))
	require.Equal(t, float64(1), testutil.ToFloat64(m.processed.(prometheus.Collector)))
	require.Equal(t, float64(7), testutil.ToFloat64(m.queueDepth.(prometheus.Collector)))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}

	require.ElementsMatch(t,
		[]string{
			"test_jobs_enqueued_total",
			"test_jobs_processed_total",
			"test_connections_accepted_total",
			"test_read_errors_total",
			"test_sink_errors_total",
			"test_queue_depth",
			"test_job_wait_seconds",
		},
		names)
}

func TestProcessPrometheusError(t *testing.T) {

	require.NoError(t, ProcessPrometheusError(nil))
	require.NoError(t, ProcessPrometheusError(prometheus.AlreadyRegisteredError{}))

	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "dup"})
	require.NoError(t, reg.Register(c))
	require.NoError(t, ProcessPrometheusError(reg.Register(c)))
}

func TestMockMetric(t *testing.T) {

	m := NewMockMetric()

	m.IncEnqueued()
	m.IncAccepted()
	m.SetQueueDepth(3)
	m.ObserveWait(time.Second)

	require.Equal(t, float64(1), m.EnqueuedCounter.Get())
	require.Equal(t, float64(1), m.AcceptedCounter.Get())
	require.Equal(t, float64(3), m.QueueDepthGauge.Get())
	require.Equal(t, []float64{1}, m.WaitObserver.GetSlice())
}
