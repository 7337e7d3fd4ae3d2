package worker

import (
	"time"

	"go.uber.org/zap"
)

type worker struct {
	id   int
	pool *Pool
}

func newWorker(id int, pool *Pool) *worker {
	return &worker{
		id:   id,
		pool: pool,
	}
}

func (w *worker) run() {
	defer w.pool.wg.Done()

	for {
		job, ok := w.pool.next()
		if !ok {
			return
		}

		w.invoke(job)
	}
}

func (w *worker) invoke(job *Job) {

	defer func() {
		if e := recover(); e != nil {
			w.pool.logger.Error("job handler panic",
				zap.Int("worker", w.id),
				zap.String("job", job.ID),
				zap.Any("panic", e))
		}
	}()

	w.pool.metrics.ObserveWait(time.Since(job.EnqueuedAt))
	w.pool.handler(job)
	w.pool.metrics.IncProcessed()
}
