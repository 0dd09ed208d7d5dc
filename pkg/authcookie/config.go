package authcookie

import (
	"github.com/dmitrymomot/authjar/pkg/secrets"
)

// Config holds jar settings loaded from the environment.
type Config struct {
	// Secret is a hex or base64 master secret. Empty means a random key that
	// lives only as long as the process.
	Secret string `env:"AUTHCOOKIE_SECRET"`
	// Hash names the digest used under HMAC, see HashByName.
	Hash string `env:"AUTHCOOKIE_HASH" envDefault:"sha1"`
	// KeyContext separates the jar key from other keys derived from Secret.
	KeyContext string `env:"AUTHCOOKIE_KEY_CONTEXT" envDefault:"authcookie-v1"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Hash:       DefaultHash,
		KeyContext: "authcookie-v1",
	}
}

// NewFromConfig creates a Jar from cfg. The signing key is derived from
// cfg.Secret with HKDF under cfg.KeyContext; opts are applied after the
// configured hash and may override it.
func NewFromConfig(cfg Config, opts ...Option) (*Jar, error) {
	h, err := HashByName(cfg.Hash)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithHash(h)}, opts...)

	if cfg.Secret == "" {
		return New(opts...)
	}

	master, err := secrets.DecodeKey(cfg.Secret)
	if err != nil {
		return nil, err
	}

	key, err := secrets.DeriveKey(master, cfg.KeyContext)
	if err != nil {
		return nil, err
	}

	return NewWithKey(key, opts...)
}
