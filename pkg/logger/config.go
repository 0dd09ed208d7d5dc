package logger

import (
	"log/slog"
	"strings"
)

// Config describes logger settings loaded from the environment.
type Config struct {
	Level   string `env:"LOG_LEVEL" envDefault:""`
	Format  string `env:"LOG_FORMAT" envDefault:""`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME" envDefault:"authjar"`
}

// Options converts c into logger options. Level and Format override the
// environment defaults when set; an unknown level is ignored.
func (c Config) Options() []Option {
	opts := []Option{WithEnvironment(c.Env, c.Service)}

	if c.Level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(c.Level)); err == nil {
			opts = append(opts, WithLevel(lvl))
		}
	}
	if c.Format != "" {
		opts = append(opts, WithFormat(Format(strings.ToLower(c.Format))))
	}

	return opts
}
