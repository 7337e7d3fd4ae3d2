package reqlog

import (
	"context"
	"os"
	"sync"
)

// DefaultFile is the request log path relative to the working directory
const DefaultFile = "log.txt"

// FileSink appends the raw payload of each request as one line.
// Writing is best-effort: a file that cannot be opened or written
// drops the record without an error.
type FileSink struct {
	path string
	mu   sync.Mutex
}

func NewFileSink(path string) *FileSink {
	if path == "" {
		path = DefaultFile
	}

	return &FileSink{
		path: path,
	}
}

func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) Write(_ context.Context, rec *Record) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil
	}
	defer f.Close()

	f.WriteString(rec.Payload + "\n")

	return nil
}

func (s *FileSink) Close() error {
	return nil
}
