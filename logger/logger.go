package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// New builds a logger from the settings
func New(cfg Config) (*zap.Logger, error) {

	zapCfg, err := cfg.ZapConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse logger settings")
	}

	l, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	return l, nil
}
