package db

import (
	"net"
	"net/url"

	"github.com/pkg/errors"
)

// Config of the postgres request journal
type Config struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SslMode  string `mapstructure:"ssl-mode"`
	Migrate  bool   `mapstructure:"migrate"`
}

// Enabled reports whether a database host is configured
func (c Config) Enabled() bool {
	return len(c.Host) > 0
}

func (c Config) Check() error {

	if len(c.Host) == 0 {
		return errors.New("db.host: was not set")
	}

	if len(c.Port) == 0 {
		return errors.New("db.port: invalid value")
	}

	if len(c.Name) == 0 {
		return errors.New("db.name: was not set")
	}

	if len(c.User) == 0 {
		return errors.New("db.user: was not set")
	}

	if len(c.SslMode) == 0 {
		return errors.New("db.ssl-mode: was not set")
	}

	return nil
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ConnURL returns a connection string for the lib/pq driver
func (c *Config) ConnURL() string {

	q := url.Values{}
	q.Set("sslmode", c.SslMode)

	u := &url.URL{
		Scheme:   "postgres",
		Host:     c.Addr(),
		Path:     c.Name,
		RawQuery: q.Encode(),
	}

	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}

	return u.String()
}
