// Package accounts persists the account store as a single unit.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/mykeychain/internal/models"
)

// Repository loads and saves the whole account store. There is no partial
// or incremental persistence: Save always replaces everything.
type Repository interface {
	Load(ctx context.Context) (models.Store, error)
	Save(ctx context.Context, store models.Store) error
}
