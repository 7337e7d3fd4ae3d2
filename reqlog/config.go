package reqlog

import (
	"context"

	"github.com/pkg/errors"

	"github.com/dialogs/dialog-acceptor/db"
	"github.com/dialogs/dialog-acceptor/kafka"
)

// Config selects the request log backends. The file sink is always on;
// kafka and postgres are added when configured.
type Config struct {
	File     string       `mapstructure:"request-log"`
	Kafka    kafka.Config `mapstructure:"kafka"`
	Postgres db.Config    `mapstructure:"db"`
}

// New builds the sink set described by the config
func New(ctx context.Context, conf Config) (Sink, error) {

	sinks := MultiSink{NewFileSink(conf.File)}

	if conf.Kafka.Enabled() {
		if err := conf.Kafka.Check(); err != nil {
			return nil, err
		}
		sinks = append(sinks, NewKafkaSink(kafka.NewWriter(&conf.Kafka), conf.Kafka.WriteTimeout()))
	}

	if conf.Postgres.Enabled() {
		s, err := OpenPostgresSink(ctx, conf.Postgres)
		if err != nil {
			sinks.Close()
			return nil, errors.Wrap(err, "postgres request log")
		}
		sinks = append(sinks, s)
	}

	if len(sinks) == 1 {
		return sinks[0], nil
	}

	return sinks, nil
}
