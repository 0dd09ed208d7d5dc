package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/authjar/pkg/authcookie"
	"github.com/dmitrymomot/authjar/pkg/config"
	"github.com/dmitrymomot/authjar/pkg/cookie"
	"github.com/dmitrymomot/authjar/pkg/httpserver"
	"github.com/dmitrymomot/authjar/pkg/logger"
	"github.com/dmitrymomot/authjar/pkg/redis"
	"github.com/dmitrymomot/authjar/pkg/requestid"
	"github.com/dmitrymomot/authjar/pkg/secrets"
)

type appConfig struct {
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

func main() {
	var (
		appCfg    appConfig
		logCfg    logger.Config
		httpCfg   httpserver.Config
		jarCfg    authcookie.Config
		cookieCfg cookie.Config
		redisCfg  redis.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&logCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&jarCfg)
	config.MustLoad(&cookieCfg)
	config.MustLoad(&redisCfg)

	log := logger.New(append(logCfg.Options(), logger.WithContextExtractors(requestid.LoggerExtractor()))...)
	logger.SetAsDefault(log)

	ctx := context.Background()

	jar, checks, closeFn, err := newJar(ctx, jarCfg, redisCfg, log)
	if err != nil {
		log.Error("failed to create cookie jar", logger.Error(err))
		os.Exit(1)
	}
	defer closeFn()

	a := &app{
		jar:     jar,
		ttl:     appCfg.SessionTTL,
		cookies: cookieCfg.Options(),
		log:     log,
	}

	if err := httpserver.New(httpCfg, log).Run(ctx, a.routes(checks...)); err != nil {
		log.Error("server stopped", logger.Error(err))
		closeFn()
		os.Exit(1)
	}
}

// newJar builds the jar from AUTHCOOKIE_SECRET when set. Otherwise, with
// REDIS_URL configured, every replica shares one random key published in
// Redis; without either the key lives only as long as the process.
func newJar(ctx context.Context, jarCfg authcookie.Config, redisCfg redis.Config, log *slog.Logger) (*authcookie.Jar, []httpserver.Check, func(), error) {
	noop := func() {}

	if jarCfg.Secret != "" || !redisCfg.Enabled() {
		if jarCfg.Secret == "" {
			log.Warn("AUTHCOOKIE_SECRET is not set, cookies will not survive a restart")
		}
		jar, err := authcookie.NewFromConfig(jarCfg)
		return jar, nil, noop, err
	}

	h, err := authcookie.HashByName(jarCfg.Hash)
	if err != nil {
		return nil, nil, noop, err
	}

	client, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return nil, nil, noop, err
	}
	closeFn := func() { _ = client.Close() }

	key, err := secrets.SharedKey(ctx, client, redisCfg.KeyName, secrets.KeySize)
	if err != nil {
		closeFn()
		return nil, nil, noop, err
	}
	log.Info("using shared signing key", slog.String("redis_key", redisCfg.KeyName))

	jar, err := authcookie.NewWithKey(key, authcookie.WithHash(h))
	if err != nil {
		closeFn()
		return nil, nil, noop, err
	}

	return jar, []httpserver.Check{redis.Healthcheck(client, redisCfg.KeyName)}, closeFn, nil
}
