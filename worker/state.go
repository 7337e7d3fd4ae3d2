package worker

import "sync/atomic"

// state is the pool shutdown flag: false at construction, set once, never reset
type state struct {
	closed int32
}

func (s *state) isClosed() bool {
	return atomic.LoadInt32(&s.closed) > 0
}

// markClosed sets the flag and reports whether this call was the one to set it
func (s *state) markClosed() bool {
	return atomic.CompareAndSwapInt32(&s.closed, 0, 1)
}
