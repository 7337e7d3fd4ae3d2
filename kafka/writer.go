package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

// IWriter interface of kafka writer client
type IWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() (err error)
}

// NewWriter create original kafka writer client for the configured topic
func NewWriter(config *Config) *kafkago.Writer {
	return kafkago.NewWriter(newWriterConfig(config))
}

// every message is flushed on its own: a synchronous write must not wait
// for the batch timer
func newWriterConfig(config *Config) kafkago.WriterConfig {
	return kafkago.WriterConfig{
		Brokers:   config.Brokers,
		Dialer:    newDialer(config),
		Topic:     config.Topic,
		BatchSize: 1,
	}
}
