package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                                       // redis://:password@localhost:6379/0; empty disables Redis
	KeyName        string        `env:"REDIS_KEY_NAME" envDefault:"authjar:signing-key"` // key under which the shared signing key is stored
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
