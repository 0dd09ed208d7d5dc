// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - The default .env file in the working directory is loaded once, the
//     first time Load runs. A missing file is not an error.
//   - LoadEnv loads explicit files; variables already present in the
//     process environment always win.
//   - Load parses the environment into any struct using env tags. Options
//     add a variable prefix or substitute an explicit variable map, which
//     keeps tests independent of the process environment.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr string        `env:"ADDR" envDefault:":8080"`
//	    TTL  time.Duration `env:"TTL" envDefault:"1h"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg, config.WithPrefix("AUTHJAR_")); err != nil {
//	    // handle error
//	}
//
// MustLoad and MustLoadEnv panic instead of returning an error, for
// configuration without which the process cannot start.
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig; a nil target yields
// ErrNilPointer.
package config
