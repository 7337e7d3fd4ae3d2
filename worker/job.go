package worker

import (
	"io"
	"time"

	"go.uber.org/zap"
)

// A Job pairs an accepted connection with the request read from it.
// The connection is owned by the Job once enqueued and by the worker
// that pops it afterwards.
type Job struct {
	ID         string
	Conn       io.Closer
	Payload    string
	EnqueuedAt time.Time
}

// Handler is the action a worker runs for each popped job
type Handler func(*Job)

// CloseConn is the default job action: it releases the connection handle
func CloseConn(l *zap.Logger) Handler {
	return func(job *Job) {
		if job.Conn == nil {
			return
		}

		if err := job.Conn.Close(); err != nil {
			l.Debug("failed to close connection",
				zap.String("job", job.ID),
				zap.Error(err))
		}
	}
}
