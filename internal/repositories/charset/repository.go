// Package charset persists the cipher alphabet definition.
package charset

import "context"

// Repository loads the alphabet character set from durable storage,
// establishing the canonical default on first use.
type Repository interface {
	Load(ctx context.Context) (string, error)
}
