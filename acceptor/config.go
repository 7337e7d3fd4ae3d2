package acceptor

import (
	"time"

	"github.com/pkg/errors"
)

// DefaultReadLimit is the most bytes read from a connection as its request
const DefaultReadLimit = 99

// Config of the connection acceptor
type Config struct {
	// Host to bind; empty means all interfaces
	Host string `mapstructure:"host"`
	// Port to bind. The range is not validated: a bad port fails at bind.
	Port int `mapstructure:"port"`
	// Workers in the pool; 0 selects the number of CPUs
	Workers int `mapstructure:"workers"`
	// ReadLimit bounds the request read from each connection
	ReadLimit int `mapstructure:"read-limit"`
	// ReadTimeout of the request read; 0 blocks indefinitely
	ReadTimeout time.Duration `mapstructure:"read-timeout"`
}

// Check validates the values that have no meaningful fallback
func (c Config) Check() error {

	if c.Workers < 0 {
		return errors.New("workers: invalid value")
	}

	if c.ReadLimit < 0 {
		return errors.New("read-limit: invalid value")
	}

	if c.ReadTimeout < 0 {
		return errors.New("read-timeout: invalid value")
	}

	return nil
}

func (c Config) readLimit() int {
	if c.ReadLimit == 0 {
		return DefaultReadLimit
	}
	return c.ReadLimit
}
