package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Checker is the subset of redis.UniversalClient the healthcheck needs.
type Checker interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// Healthcheck returns a readiness check that pings client and, when keys are
// given, requires every one of them to exist. A shared signing key evicted
// from redis would make the next replica to start mint a different key, so
// its absence is reported as unready.
func Healthcheck(client Checker, keys ...string) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		if len(keys) == 0 {
			return nil
		}
		n, err := client.Exists(ctx, keys...).Result()
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		if int(n) != len(keys) {
			return fmt.Errorf("%w: %d of %d keys missing", ErrKeyMissing, len(keys)-int(n), len(keys))
		}
		return nil
	}
}
