package mocks

import (
	"context"
	"sync"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

// WriterMock is a kafka writer double keeping written messages
type WriterMock struct {
	mock.Mock

	mu       sync.Mutex
	messages []kafkago.Message
}

// NewWriter returns a writer accepting every message
func NewWriter() *WriterMock {

	w := &WriterMock{}
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)
	w.On("Close").Return(nil)

	return w
}

func (w *WriterMock) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {

	args := w.Called(ctx, msgs)
	if err := args.Error(0); err != nil {
		return err
	}

	w.mu.Lock()
	w.messages = append(w.messages, msgs...)
	w.mu.Unlock()

	return nil
}

func (w *WriterMock) Close() error {
	return w.Called().Error(0)
}

// Messages returns a copy of the written messages
func (w *WriterMock) Messages() []kafkago.Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	retval := make([]kafkago.Message, len(w.messages))
	copy(retval, w.messages)
	return retval
}
