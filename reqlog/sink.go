package reqlog

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// Sink records accepted requests
type Sink interface {
	Write(ctx context.Context, rec *Record) error
	Close() error
}

// MultiSink writes each record to every sink
type MultiSink []Sink

func (m MultiSink) Write(ctx context.Context, rec *Record) error {

	var failed []string
	for _, s := range m {
		if err := s.Write(ctx, rec); err != nil {
			failed = append(failed, err.Error())
		}
	}

	if len(failed) > 0 {
		return errors.Errorf("request log: %s", strings.Join(failed, "; "))
	}

	return nil
}

func (m MultiSink) Close() error {

	var failed []string
	for _, s := range m {
		if err := s.Close(); err != nil {
			failed = append(failed, err.Error())
		}
	}

	if len(failed) > 0 {
		return errors.Errorf("close request log: %s", strings.Join(failed, "; "))
	}

	return nil
}
