// Package models defines the account, record and store types that make up
// the persisted keychain state.
package models

import (
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/mykeychain/internal/common"
	"github.com/google/uuid"
)

// MinMasterSecretLen is the minimum master secret length accepted at
// account creation.
const MinMasterSecretLen = 6

// Record is one resource's obfuscated password and its category.
type Record struct {
	Encrypted string `json:"encrypted"`
	Category  string `json:"category"`
}

// Account is one user's master secret, resource records and custom
// categories. The login name is the Store key and is not repeated here;
// ID is a stable identity that survives store rewrites.
//
// MasterSecret is stored without any one-way transformation. That is a
// known limitation of the persisted format, kept for compatibility with
// existing stores.
type Account struct {
	ID               string            `json:"id"`
	MasterSecret     string            `json:"master_password"`
	Records          map[string]Record `json:"passwords"`
	CustomCategories []string          `json:"custom_categories"`
}

// NewAccount validates the creation arguments and returns an empty account.
// The login is validated here as well because account construction and
// store insertion always happen together.
func NewAccount(login, masterSecret, confirmSecret string) (*Account, error) {
	if login == "" {
		return nil, fmt.Errorf("login must not be empty: %w", common.ErrInvalidInput)
	}
	if utf8.RuneCountInString(masterSecret) < MinMasterSecretLen {
		return nil, fmt.Errorf("master secret must be at least %d characters: %w",
			MinMasterSecretLen, common.ErrInvalidInput)
	}
	if masterSecret != confirmSecret {
		return nil, fmt.Errorf("master secret confirmation does not match: %w", common.ErrInvalidInput)
	}

	return &Account{
		ID:               uuid.NewString(),
		MasterSecret:     masterSecret,
		Records:          make(map[string]Record),
		CustomCategories: []string{},
	}, nil
}

// Store is the whole persisted mapping, keyed by login name. It is loaded
// and saved as a single unit.
type Store map[string]*Account

// Account looks up an account by its exact, case-sensitive login.
func (s Store) Account(login string) (*Account, bool) {
	acc, ok := s[login]
	return acc, ok
}
