package memory

import (
	"bufio"
	"bytes"
	"encoding/json"
	"sync"
)

// Buffer is a goroutine safe zap sink
type Buffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Entries decodes every written line
func (b *Buffer) Entries() ([]map[string]interface{}, error) {

	b.mu.Lock()
	data := append([]byte(nil), b.buf.Bytes()...)
	b.mu.Unlock()

	retval := make([]map[string]interface{}, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		entry := map[string]interface{}{}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return nil, err
		}
		retval = append(retval, entry)
	}

	return retval, scanner.Err()
}

// Messages returns the "msg" field of every written line
func (b *Buffer) Messages() []string {

	entries, err := b.Entries()
	if err != nil {
		return nil
	}

	retval := make([]string, 0, len(entries))
	for _, e := range entries {
		if msg, ok := e["msg"].(string); ok {
			retval = append(retval, msg)
		}
	}

	return retval
}

func (b *Buffer) Close() error { return nil }
func (b *Buffer) Sync() error  { return nil }
