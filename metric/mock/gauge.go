package mock

import (
	"math"
	"sync/atomic"
)

type Gauge struct {
	bits uint64
}

func NewGauge() *Gauge {
	return &Gauge{}
}

func (g *Gauge) Set(val float64) {
	atomic.StoreUint64(&g.bits, math.Float64bits(val))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(atomic.LoadUint64(&g.bits))
}
