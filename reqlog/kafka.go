package reqlog

import (
	"context"
	"time"

	"github.com/mailru/easyjson"
	"github.com/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/dialogs/dialog-acceptor/kafka"
)

// KafkaSink publishes each record as JSON keyed by the record id.
// A publish never outlives timeout.
type KafkaSink struct {
	writer  kafka.IWriter
	timeout time.Duration
}

func NewKafkaSink(writer kafka.IWriter, timeout time.Duration) *KafkaSink {
	return &KafkaSink{
		writer:  writer,
		timeout: timeout,
	}
}

func (s *KafkaSink) Write(ctx context.Context, rec *Record) error {

	value, err := easyjson.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "failed to encode request record")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err = s.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(rec.ID),
		Value: value,
		Time:  rec.ReceivedAt,
	})

	return errors.Wrap(err, "failed to publish request record")
}

func (s *KafkaSink) Close() error {
	return errors.Wrap(s.writer.Close(), "close kafka writer")
}
