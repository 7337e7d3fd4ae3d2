package memory

import (
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/dialogs/dialog-acceptor/logger"
)

var sinkSeq uint64

// New creates a logger writing JSON lines to an in-memory buffer
func New(cfg logger.Config) (*zap.Logger, *Buffer, error) {

	zapCfg, err := cfg.ZapConfig()
	if err != nil {
		return nil, nil, err
	}

	sinkName := "memory" + strconv.FormatInt(time.Now().UnixNano(), 36) +
		"x" + strconv.FormatUint(atomic.AddUint64(&sinkSeq, 1), 10)

	buf := NewBuffer()
	err = zap.RegisterSink(sinkName, func(*url.URL) (zap.Sink, error) {
		return buf, nil
	})
	if err != nil {
		return nil, nil, err
	}

	zapCfg.Encoding = "json"
	zapCfg.EncoderConfig = zap.NewProductionEncoderConfig()
	zapCfg.Sampling = nil
	zapCfg.OutputPaths = []string{sinkName + "://"}

	l, err := zapCfg.Build()
	return l, buf, err
}
