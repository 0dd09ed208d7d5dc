package secrets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyValueStore is the subset of *redis.Client used by SharedKey.
type KeyValueStore interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// SharedKey returns the key stored under name, publishing a freshly generated
// key of size bytes first if none exists yet. The key never expires in the
// store; replacing it invalidates every cookie signed with the old one.
func SharedKey(ctx context.Context, store KeyValueStore, name string, size int) ([]byte, error) {
	candidate, err := GenerateKeyWithLength(size)
	if err != nil {
		return nil, err
	}

	if err := store.SetNX(ctx, name, EncodeKey(candidate), 0).Err(); err != nil {
		return nil, errors.Join(ErrSharedKeyUnavailable, err)
	}

	// Another process may have won the SETNX race; the stored value is authoritative.
	stored, err := store.Get(ctx, name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: key %q vanished after publish", ErrSharedKeyUnavailable, name)
		}
		return nil, errors.Join(ErrSharedKeyUnavailable, err)
	}

	key, err := DecodeKey(stored)
	if err != nil {
		return nil, errors.Join(ErrSharedKeyUnavailable, err)
	}
	return key, nil
}
