package kafka

import (
	"crypto/tls"
	"time"

	"github.com/pkg/errors"
)

// DefaultWriteTimeout bounds a single publish when Timeout is not set
const DefaultWriteTimeout = 5 * time.Second

// Config for an implementation of kafka writer
type Config struct {
	Brokers   []string      `mapstructure:"brokers"`
	Topic     string        `mapstructure:"topic"`
	Timeout   time.Duration `mapstructure:"timeout"`
	DualStack bool          `mapstructure:"dual-stack"`
	TLSConfig *tls.Config   `mapstructure:"-"`
}

// Enabled reports whether any broker is configured
func (c Config) Enabled() bool {
	return len(c.Brokers) > 0
}

// WriteTimeout returns the bound of a single publish
func (c Config) WriteTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultWriteTimeout
}

// Check validates the settings of an enabled writer
func (c Config) Check() error {

	for _, b := range c.Brokers {
		if b == "" {
			return errors.New("kafka.brokers: empty broker address")
		}
	}

	if c.Topic == "" {
		return errors.New("kafka.topic: was not set")
	}

	if c.Timeout < 0 {
		return errors.New("kafka.timeout: invalid value")
	}

	return nil
}
