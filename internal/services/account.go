package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mykeychain/internal/common"
	"github.com/dmitrijs2005/mykeychain/internal/models"
)

// MaxAuthAttempts is how many master-secret attempts Authenticate allows
// before giving up.
const MaxAuthAttempts = 3

// SecretPrompt supplies one master-secret attempt. It receives the number
// of attempts still available, counting the one being prompted for (3,
// then 2, then 1), so callers can tell the user how many tries remain.
type SecretPrompt func(remaining int) (string, error)

// CreateAccount validates the arguments, inserts a new empty account into
// the store and persists it. A duplicate login yields
// common.ErrAlreadyExists; validation failures yield
// common.ErrInvalidInput.
func (k *Keychain) CreateAccount(ctx context.Context, login, masterSecret, confirmSecret string) (*models.Account, error) {
	acc, err := models.NewAccount(login, masterSecret, confirmSecret)
	if err != nil {
		return nil, err
	}
	if _, ok := k.store[login]; ok {
		return nil, fmt.Errorf("account %q: %w", login, common.ErrAlreadyExists)
	}

	k.store[login] = acc
	if err := k.Save(ctx); err != nil {
		// Keep memory consistent with storage when the write failed.
		delete(k.store, login)
		return nil, err
	}

	k.log.Info(ctx, "account created", "login", login, "id", acc.ID)
	return acc, nil
}

// Authenticate resolves the login and then asks prompt for the master
// secret, up to MaxAuthAttempts times. An unknown login is
// common.ErrNotFound; exhausting all attempts is
// common.ErrAuthenticationFailed. The comparison is exact, byte for byte.
func (k *Keychain) Authenticate(ctx context.Context, login string, prompt SecretPrompt) (*models.Account, error) {
	acc, ok := k.store.Account(login)
	if !ok {
		return nil, fmt.Errorf("account %q: %w", login, common.ErrNotFound)
	}

	for remaining := MaxAuthAttempts; remaining > 0; remaining-- {
		secret, err := prompt(remaining)
		if err != nil {
			return nil, err
		}
		if secret == acc.MasterSecret {
			k.log.Info(ctx, "authenticated", "login", login)
			return acc, nil
		}
		k.log.Warn(ctx, "wrong master secret", "login", login, "remaining", remaining-1)
	}

	return nil, fmt.Errorf("account %q: %w", login, common.ErrAuthenticationFailed)
}
