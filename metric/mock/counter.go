package mock

import (
	"fmt"
	"math"
	"sync/atomic"
)

type Counter struct {
	bits uint64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Inc() {
	c.Add(1)
}

func (c *Counter) Add(val float64) {

	if val < 0 {
		panic(fmt.Sprintf("counter cannot decrease in value: %v", val))
	}

	for {
		oldBits := atomic.LoadUint64(&c.bits)
		newBits := math.Float64bits(math.Float64frombits(oldBits) + val)
		if atomic.CompareAndSwapUint64(&c.bits, oldBits, newBits) {
			return
		}
	}
}

func (c *Counter) Get() float64 {
	return math.Float64frombits(atomic.LoadUint64(&c.bits))
}
