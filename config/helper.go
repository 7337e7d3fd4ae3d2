package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// GetInt returns integer value. Returns error if value is not set
func GetInt(src *viper.Viper, key string) (int, error) {

	if src.IsSet(key) {
		return src.GetInt(key), nil
	}

	return 0, newError(key)
}

func newError(key string) error {
	return fmt.Errorf("not found config value: '%s'", key)
}
