package worker

import (
	"container/list"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// A Pool of the workers sharing one unbounded FIFO queue of jobs
type Pool struct {
	state

	handler Handler
	metrics Metrics
	logger  *zap.Logger

	mu    sync.Mutex
	cond  *sync.Cond
	queue *list.List

	workersList []*worker
	wg          sync.WaitGroup
}

// Option configures a pool
type Option func(*Pool)

// WithHandler replaces the default job action (closing the connection)
func WithHandler(h Handler) Option {
	return func(p *Pool) {
		p.handler = h
	}
}

// WithMetrics sets the pool metrics receiver
func WithMetrics(m Metrics) Option {
	return func(p *Pool) {
		p.metrics = m
	}
}

// WithLogger sets the pool logger
func WithLogger(l *zap.Logger) Option {
	return func(p *Pool) {
		p.logger = l
	}
}

// NewPool starts countWorkers workers. If countWorkers is not positive
// the number of CPUs is used, and at least one worker is always started.
func NewPool(countWorkers int, opts ...Option) *Pool {

	if countWorkers <= 0 {
		countWorkers = runtime.NumCPU()
	}
	if countWorkers <= 0 {
		countWorkers = 1
	}

	p := &Pool{
		metrics: nopMetrics{},
		logger:  zap.NewNop(),
		queue:   list.New(),
	}
	p.cond = sync.NewCond(&p.mu)

	for _, opt := range opts {
		opt(p)
	}

	if p.handler == nil {
		p.handler = CloseConn(p.logger)
	}

	p.workersList = make([]*worker, countWorkers)
	p.wg.Add(countWorkers)
	for i := 0; i < countWorkers; i++ {
		p.workersList[i] = newWorker(i, p)
		go p.workersList[i].run()
	}

	return p
}

// Size returns the number of workers
func (p *Pool) Size() int {
	return len(p.workersList)
}

// Pending returns the number of queued jobs not yet taken by a worker
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Len()
}

// Enqueue appends the job to the tail of the queue and wakes one worker.
// It never blocks: the queue is unbounded.
func (p *Pool) Enqueue(job *Job) {

	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now()
	}

	p.mu.Lock()
	p.queue.PushBack(job)
	p.metrics.IncEnqueued()
	p.metrics.SetQueueDepth(p.queue.Len())
	p.cond.Signal()
	p.mu.Unlock()
}

// Close sets the shutdown flag, wakes every worker and waits for all of them
// to return. Jobs still queued are abandoned: they are not run and their
// connections are not closed.
func (p *Pool) Close() error {

	p.mu.Lock()
	first := p.markClosed()
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()

	if first {
		if n := p.Pending(); n > 0 {
			p.logger.Warn("abandoned queued jobs on shutdown", zap.Int("count", n))
		}
	}

	return nil
}

// next blocks until a job is available or the pool is closed
func (p *Pool) next() (*Job, bool) {

	p.mu.Lock()
	defer p.mu.Unlock()

	for p.queue.Len() == 0 && !p.isClosed() {
		p.cond.Wait()
	}

	if p.isClosed() {
		return nil, false
	}

	job := p.queue.Remove(p.queue.Front()).(*Job)
	p.metrics.SetQueueDepth(p.queue.Len())

	return job, true
}
