package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dmitrymomot/authjar/pkg/secrets"
)

func main() {
	size := flag.Int("size", secrets.KeySize, "key length in bytes")
	flag.Parse()

	key, err := secrets.GenerateKeyWithLength(*size)
	if err != nil {
		log.Fatalf("Failed to generate signing key: %v", err)
	}

	fmt.Printf("Generated signing key (for AUTHCOOKIE_SECRET env var): \n———\n%s\n———\n", secrets.EncodeKey(key))
}
