package config

import (
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// New returns a config merged from (highest priority first) the command flags
// that were set, environment variables selected by name prefix, the config file
// and the defaults. Nested keys map to variables with '_' in place of '.' and '-':
// "kafka.brokers" is read from PREFIX_KAFKA_BROKERS.
func New(prefix, file string, flags *flag.FlagSet, defaults map[string]interface{}) (*viper.Viper, error) {

	v := viper.New()

	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetEnvPrefix(strings.ToUpper(prefix))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	if strings.TrimSpace(file) != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to parse config")
		}
	}

	return v, nil
}
