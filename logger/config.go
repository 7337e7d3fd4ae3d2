package logger

import (
	"os"
	"strings"

	pkgerr "github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dialogs/dialog-acceptor/enum"
)

// Level of the writer
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = enum.New().
	Add(LevelDebug, "debug").
	Add(LevelInfo, "info").
	Add(LevelWarn, "warn").
	Add(LevelError, "error")

// ParseLevel returns a level by name
func ParseLevel(name string) (Level, error) {

	v, ok := levelNames.GetByString(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return LevelDebug, pkgerr.Errorf("unknown logger level: %q", name)
	}

	return v.(Level), nil
}

func (l Level) String() string {
	return levelNames.Name(l, "unknown")
}

// Config of the logger wrapper
type Config struct {
	Debug  bool     `json:"debug" mapstructure:"debug"`
	Level  string   `json:"level" mapstructure:"level"`
	Output []string `json:"output" mapstructure:"output"`
}

// ZapConfig converts the settings to a zap configuration.
// Output paths other than stdout and stderr must exist.
func (c Config) ZapConfig() (*zap.Config, error) {

	var zapCfg zap.Config
	if c.Debug {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if len(c.Output) > 0 {
		zapCfg.OutputPaths = nil
		for _, path := range c.Output {
			if path != "stdout" && path != "stderr" {
				if _, err := os.Stat(path); err != nil {
					return nil, pkgerr.Wrap(err, "logger output path")
				}
			}
			zapCfg.OutputPaths = append(zapCfg.OutputPaths, path)
		}
	}

	level := LevelInfo
	if c.Level != "" {
		var err error
		if level, err = ParseLevel(c.Level); err != nil {
			return nil, err
		}
	}
	zapCfg.Level = level.zapLevel()

	return &zapCfg, nil
}

func (l Level) zapLevel() zap.AtomicLevel {

	switch l {
	case LevelDebug:
		return zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case LevelInfo:
		return zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case LevelWarn:
		return zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	return zap.NewAtomicLevelAt(zapcore.ErrorLevel)
}
