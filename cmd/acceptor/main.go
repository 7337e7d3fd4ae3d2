package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dialogs/dialog-acceptor/acceptor"
	"github.com/dialogs/dialog-acceptor/logger"
	"github.com/dialogs/dialog-acceptor/qosmetrics"
	"github.com/dialogs/dialog-acceptor/reqlog"
	"github.com/dialogs/dialog-acceptor/service"
	"github.com/dialogs/dialog-acceptor/service/info"
	"github.com/dialogs/dialog-acceptor/service/router"
)

// set by -ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:]))
}

func run(name string, args []string) int {

	conf, err := loadConfig(name, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		return 2
	}

	l, err := logger.New(conf.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		return 2
	}
	defer l.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics, err := qosmetrics.New("acceptor", prometheus.DefaultRegisterer)
	if err != nil {
		l.Error("failed to register metrics", zap.Error(err))
		return 1
	}

	sink, err := reqlog.New(ctx, conf.RequestLog)
	if err != nil {
		l.Error("failed to open request log", zap.Error(err))
		return 1
	}
	defer func() {
		if err := sink.Close(); err != nil {
			l.Warn("failed to close request log", zap.Error(err))
		}
	}()

	srv := acceptor.New(conf.Acceptor, sink,
		acceptor.WithLogger(l),
		acceptor.WithMetrics(metrics))

	// single open/listen/close lifecycle: a fatal socket error ends the process
	if err := srv.Open(); err != nil {
		l.Error("server stopped", zap.Error(err))
		return 1
	}
	defer srv.Close()

	tasks := []service.GroupTask{srv.Listen}

	if conf.AdminAddr != "" {
		admin := service.NewHTTP(
			router.NewAdminRouter(
				info.New(name, version, commit, buildDate),
				promhttp.Handler()),
			conf.AdminCloseTimeout,
			l)

		tasks = append(tasks, func(ctx context.Context) error {
			go func() {
				<-ctx.Done()
				admin.Close()
			}()

			if err := admin.ListenAndServeAddr(conf.AdminAddr); err != http.ErrServerClosed {
				return err
			}
			return nil
		})
	}

	var (
		once     sync.Once
		exitCode int
	)

	chErr, cancel := service.RunGroup(ctx, tasks...)
	defer cancel()

	for err := range chErr {
		once.Do(cancel)

		if err != nil {
			l.Error("server stopped", zap.Error(err))
			exitCode = 1
		}
	}

	if exitCode == 0 {
		l.Info("server stopped")
	}

	return exitCode
}
