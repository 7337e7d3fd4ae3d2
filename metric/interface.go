package metric

// IObserver is satisfied by prometheus histograms and summaries
type IObserver interface {
	// Observe adds a single observation.
	Observe(float64)
}

// ICounter is satisfied by prometheus counters
type ICounter interface {
	// Inc increments the counter by 1.
	Inc()

	// Add adds the given value to the counter. It panics if the value is < 0.
	Add(val float64)
}

// IGauge is satisfied by prometheus gauges
type IGauge interface {
	// Set sets the gauge to an arbitrary value.
	Set(val float64)
}
