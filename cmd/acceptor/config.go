package main

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/dialogs/dialog-acceptor/acceptor"
	"github.com/dialogs/dialog-acceptor/config"
	"github.com/dialogs/dialog-acceptor/logger"
	"github.com/dialogs/dialog-acceptor/reqlog"
)

const envPrefix = "acceptor"

type appConfig struct {
	Acceptor          acceptor.Config `mapstructure:",squash"`
	RequestLog        reqlog.Config   `mapstructure:",squash"`
	Logger            logger.Config   `mapstructure:"log"`
	AdminAddr         string          `mapstructure:"admin-addr"`
	AdminCloseTimeout time.Duration   `mapstructure:"admin-close-timeout"`
}

var defaults = map[string]interface{}{
	"host":                "",
	"workers":             0,
	"read-limit":          acceptor.DefaultReadLimit,
	"read-timeout":        "0s",
	"request-log":         reqlog.DefaultFile,
	"admin-addr":          "",
	"admin-close-timeout": "5s",
	"log.debug":           false,
	"log.level":           "info",
	"log.output":          []string{},
	"kafka.brokers":       []string{},
	"kafka.topic":         "",
	"kafka.timeout":       "10s",
	"kafka.dual-stack":    false,
	"db.host":             "",
	"db.port":             "5432",
	"db.name":             "",
	"db.user":             "",
	"db.password":         "",
	"db.ssl-mode":         "disable",
	"db.migrate":          true,
}

func newFlagSet(name string) *flag.FlagSet {

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.String("config", "", "config file (yaml, json, toml)")
	flags.String("host", "", "address to bind, all interfaces if empty")
	flags.Int("workers", 0, "worker pool size, number of CPUs if 0")
	flags.Int("read-limit", acceptor.DefaultReadLimit, "max bytes read from a connection")
	flags.Duration("read-timeout", 0, "request read timeout, 0 blocks indefinitely")
	flags.String("request-log", reqlog.DefaultFile, "file the requests are appended to")
	flags.String("admin-addr", "", "address of the health/info/metrics endpoint, disabled if empty")
	flags.String("loglevel", "info", "logger level (debug, info, warn, error)")
	flags.Bool("logdevelop", false, "logger develop mode")

	return flags
}

// loadConfig parses the command line: one positional argument is the port.
// Without it the port is taken from the config file or ACCEPTOR_PORT.
func loadConfig(name string, args []string) (*appConfig, error) {

	flags := newFlagSet(name)
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	file, _ := flags.GetString("config")

	v, err := config.New(envPrefix, file, flags, defaults)
	if err != nil {
		return nil, err
	}

	if err := v.BindPFlag("log.level", flags.Lookup("loglevel")); err != nil {
		return nil, errors.Wrap(err, "loglevel flag")
	}
	if err := v.BindPFlag("log.debug", flags.Lookup("logdevelop")); err != nil {
		return nil, errors.Wrap(err, "logdevelop flag")
	}

	switch flags.NArg() {
	case 0:
		port, err := config.GetInt(v, "port")
		if err != nil {
			return nil, errors.Wrap(err, "port")
		}
		v.Set("port", port)

	case 1:
		port, err := strconv.Atoi(flags.Arg(0))
		if err != nil {
			return nil, errors.Errorf("invalid port number: %q", flags.Arg(0))
		}
		v.Set("port", port)

	default:
		return nil, errors.New("usage: acceptor [flags] <port>")
	}

	conf := &appConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if err := conf.Acceptor.Check(); err != nil {
		return nil, err
	}

	return conf, nil
}
