package redis

import "errors"

var (
	ErrEmptyURL          = errors.New("redis.empty_url")
	ErrInvalidURL        = errors.New("redis.invalid_url")
	ErrNotReady          = errors.New("redis.not_ready")
	ErrHealthcheckFailed = errors.New("redis.healthcheck_failed")
	ErrKeyMissing        = errors.New("redis.key_missing")
)
