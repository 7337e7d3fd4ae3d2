package service

import (
	"context"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	pkgerr "github.com/pkg/errors"
	"go.uber.org/zap"
)

// A HTTP service
type HTTP struct {
	closeTimeout time.Duration
	handler      http.Handler
	logger       *zap.Logger

	mu     sync.Mutex
	addr   string
	server *http.Server
	closed bool
	ready  int32
}

// NewHTTP creates a http service with the handler
func NewHTTP(handler http.Handler, closeTimeout time.Duration, l *zap.Logger) *HTTP {
	if l == nil {
		l = zap.NewNop()
	}

	return &HTTP{
		handler:      handler,
		closeTimeout: closeTimeout,
		logger:       l,
	}
}

// GetAddr returns the listening address
func (s *HTTP) GetAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Ready reports whether the service accepts connections
func (s *HTTP) Ready() bool {
	return atomic.LoadInt32(&s.ready) > 0
}

// ListenAndServeAddr listens on the TCP network address and
// accepts incoming connections on the listener.
// It returns http.ErrServerClosed after Close.
func (s *HTTP) ListenAndServeAddr(addr string) error {

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return pkgerr.Wrap(err, "new http listener")
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		l.Close()
		return http.ErrServerClosed
	}
	s.addr = l.Addr().String()
	s.server = &http.Server{Handler: s.handler}
	svr := s.server
	s.mu.Unlock()

	s.logger.Info("http service", zap.String("addr", s.addr))
	atomic.StoreInt32(&s.ready, 1)

	return svr.Serve(l)
}

// Close stops the service waiting up to the close timeout for active requests
func (s *HTTP) Close() error {

	s.mu.Lock()
	s.closed = true
	svr := s.server
	s.mu.Unlock()

	atomic.StoreInt32(&s.ready, 0)

	if svr == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.closeTimeout)
	defer cancel()

	if err := svr.Shutdown(ctx); err != nil {
		s.logger.Error("failed to shutdown", zap.Error(err))
		return pkgerr.Wrap(err, "http shutdown")
	}

	return nil
}
