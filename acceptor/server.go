package acceptor

import (
	"context"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dialogs/dialog-acceptor/reqlog"
	"github.com/dialogs/dialog-acceptor/worker"
)

// A Server accepts connections one at a time, reads a bounded request from
// each, records it and hands the connection to a worker pool that closes it.
type Server struct {
	conf    Config
	sink    reqlog.Sink
	metrics Metrics
	logger  *zap.Logger

	mu       sync.Mutex
	state    State
	listener net.Listener
}

// Option configures a server
type Option func(*Server)

// WithMetrics sets the metrics receiver of the server and its pool
func WithMetrics(m Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets the server logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// New creates a closed server
func New(conf Config, sink reqlog.Sink, opts ...Option) *Server {

	s := &Server{
		conf:    conf,
		sink:    sink,
		metrics: nopMetrics{},
		logger:  zap.NewNop(),
		state:   StateClosed,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns the socket state
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Addr returns the bound address or nil if the socket is closed
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Open binds the listening socket (closed -> bound)
func (s *Server) Open() error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateClosed {
		return newFatalError(KindBind, errors.Errorf("socket is %s", s.state))
	}

	addr := net.JoinHostPort(s.conf.Host, strconv.Itoa(s.conf.Port))
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return newFatalError(KindBind, err)
	}

	s.listener = l
	s.state = StateBound

	s.logger.Info("socket bound", zap.String("addr", l.Addr().String()))

	return nil
}

// Listen starts the worker pool and runs the accept loop (bound -> listening).
// It returns nil when ctx is done or the server is closed, and a FatalError
// on the first failed accept. The pool is shut down before Listen returns:
// jobs still queued at that moment are abandoned.
func (s *Server) Listen(ctx context.Context) error {

	s.mu.Lock()
	if s.state != StateBound {
		state := s.state
		s.mu.Unlock()
		return newFatalError(KindListen, errors.Errorf("socket is %s", state))
	}
	s.state = StateListening
	l := s.listener
	s.mu.Unlock()

	pool := worker.NewPool(s.conf.Workers,
		worker.WithMetrics(s.metrics),
		worker.WithLogger(s.logger))

	defer pool.Close()

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			l.Close()
		case <-stop:
		}
	}()

	s.logger.Info("accepting connections",
		zap.String("addr", l.Addr().String()),
		zap.Int("workers", pool.Size()))

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil || s.State() == StateClosed {
				return nil
			}
			return newFatalError(KindAccept, err)
		}

		s.serve(ctx, conn, pool)
	}
}

// Close releases the listening socket from any state
func (s *Server) Close() error {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			s.logger.Debug("listener close", zap.Error(err))
		}
		s.listener = nil
	}
	s.state = StateClosed

	return nil
}

// serve reads the request and passes the connection to the pool.
// After Enqueue the connection belongs to the pool.
func (s *Server) serve(ctx context.Context, conn net.Conn, pool *worker.Pool) {

	s.metrics.IncAccepted()

	id := uuid.New().String()
	payload := s.read(conn, id)

	rec := &reqlog.Record{
		ID:         id,
		RemoteAddr: conn.RemoteAddr().String(),
		Payload:    payload,
		ReceivedAt: time.Now(),
	}

	s.logger.Debug("request",
		zap.String("id", id),
		zap.String("remote", rec.RemoteAddr),
		zap.Int("bytes", len(payload)),
		zap.String("payload", payload))

	if err := s.sink.Write(ctx, rec); err != nil {
		s.metrics.IncSinkErrors()
		s.logger.Warn("failed to log request", zap.String("id", id), zap.Error(err))
	}

	pool.Enqueue(&worker.Job{
		ID:      id,
		Conn:    conn,
		Payload: payload,
	})
}

// read makes one read of at most the configured limit. A failed read is
// logged and yields whatever was received before the failure.
func (s *Server) read(conn net.Conn, id string) string {

	if s.conf.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.conf.ReadTimeout)); err != nil {
			s.logger.Debug("read deadline", zap.String("id", id), zap.Error(err))
		}
	}

	buf := make([]byte, s.conf.readLimit())
	n, err := conn.Read(buf)
	if err != nil && err != io.EOF {
		s.metrics.IncReadErrors()
		s.logger.Warn("error on recv", zap.String("id", id), zap.Error(err))
	}

	return string(buf[:n])
}
