// Package redis connects authjar services to Redis, which they use to share
// one signing key between processes (see secrets.SharedKey).
//
// It wraps github.com/redis/go-redis/v9 and adds:
//
//   - Connect, which parses a connection URL and retries the initial ping.
//   - Healthcheck, a readiness check that also fails with ErrKeyMissing
//     when the shared signing key is gone.
//
// Configuration is described by Config and is usually populated from the
// environment with pkg/config.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error
//	}
//	defer client.Close()
//
//	key, err := secrets.SharedKey(ctx, client, cfg.KeyName, secrets.KeySize)
package redis
