// Package passgen generates random passwords from a configurable
// character pool using a cryptographically strong source.
package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	special = "!@#$%^&*"
)

// RandomPassword returns a password of the requested length drawn from
// ASCII letters, optionally extended with digits and the fixed special
// set. Each character is chosen independently and uniformly. A length of
// zero or less yields the empty string.
func RandomPassword(length int, useDigits, useSpecial bool) (string, error) {
	if length <= 0 {
		return "", nil
	}

	pool := letters
	if useDigits {
		pool += digits
	}
	if useSpecial {
		pool += special
	}

	poolSize := big.NewInt(int64(len(pool)))
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, poolSize)
		if err != nil {
			return "", fmt.Errorf("random source: %w", err)
		}
		b.WriteByte(pool[n.Int64()])
	}
	return b.String(), nil
}
