// Package services contains the application services of mykeychain: account
// lifecycle, record CRUD and queries over one loaded account store.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mykeychain/internal/cipher"
	"github.com/dmitrijs2005/mykeychain/internal/logging"
	"github.com/dmitrijs2005/mykeychain/internal/models"
	"github.com/dmitrijs2005/mykeychain/internal/repositories/accounts"
)

// Keychain operates on one in-memory account store. The discipline is
// load once at session start, mutate in memory, persist explicitly:
// CreateAccount and CreateCustomCategory save immediately, record
// mutations are saved by Save (typically at session end). The type is not
// safe for concurrent use.
type Keychain struct {
	repo  accounts.Repository
	alpha *cipher.Alphabet
	log   logging.Logger
	store models.Store
}

// NewKeychain constructs a Keychain bound to the given repository and
// alphabet. Call Load before using any other method.
func NewKeychain(repo accounts.Repository, alpha *cipher.Alphabet, log logging.Logger) *Keychain {
	return &Keychain{repo: repo, alpha: alpha, log: log}
}

// Load reads the persisted store into memory, replacing whatever was
// loaded before.
func (k *Keychain) Load(ctx context.Context) error {
	store, err := k.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading store: %w", err)
	}
	k.store = store
	k.log.Debug(ctx, "store loaded", "accounts", len(store))
	return nil
}

// Save persists the whole in-memory store.
func (k *Keychain) Save(ctx context.Context) error {
	if err := k.repo.Save(ctx, k.store); err != nil {
		return fmt.Errorf("error saving store: %w", err)
	}
	k.log.Debug(ctx, "store saved", "accounts", len(k.store))
	return nil
}

// HasAccounts reports whether any account exists yet. The first-run flow
// uses this to offer account creation instead of a login prompt.
func (k *Keychain) HasAccounts() bool {
	return len(k.store) > 0
}
