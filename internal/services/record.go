package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mykeychain/internal/common"
	"github.com/dmitrijs2005/mykeychain/internal/models"
)

// AddRecord obfuscates plaintextPassword and stores it under resource with
// the given category. The resource must be non-empty and new for this
// account; the category must already be resolvable for the account (use
// CreateCustomCategory first for a new one).
func (k *Keychain) AddRecord(ctx context.Context, acc *models.Account, resource, plaintextPassword, category string) error {
	if resource == "" {
		return fmt.Errorf("resource must not be empty: %w", common.ErrInvalidInput)
	}
	if _, ok := acc.Records[resource]; ok {
		return fmt.Errorf("resource %q: %w", resource, common.ErrAlreadyExists)
	}
	if !acc.HasCategory(category) {
		return fmt.Errorf("unknown category %q: %w", category, common.ErrInvalidInput)
	}

	acc.Records[resource] = models.Record{
		Encrypted: k.alpha.Encrypt(plaintextPassword),
		Category:  category,
	}
	k.log.Debug(ctx, "record added", "resource", resource, "category", category)
	return nil
}

// UpdateRecord replaces the password of an existing record. The record's
// category is kept as is.
func (k *Keychain) UpdateRecord(ctx context.Context, acc *models.Account, resource, newPlaintextPassword string) error {
	if resource == "" {
		return fmt.Errorf("resource must not be empty: %w", common.ErrInvalidInput)
	}
	rec, ok := acc.Records[resource]
	if !ok {
		return fmt.Errorf("resource %q: %w", resource, common.ErrNotFound)
	}

	acc.Records[resource] = models.Record{
		Encrypted: k.alpha.Encrypt(newPlaintextPassword),
		Category:  rec.Category,
	}
	k.log.Debug(ctx, "record updated", "resource", resource)
	return nil
}

// DeleteRecord removes a record once the caller has confirmed. With
// confirmed=false nothing is touched and (false, nil) is returned:
// declining a destructive confirmation is a normal outcome, not an error.
func (k *Keychain) DeleteRecord(ctx context.Context, acc *models.Account, resource string, confirmed bool) (bool, error) {
	if resource == "" {
		return false, fmt.Errorf("resource must not be empty: %w", common.ErrInvalidInput)
	}
	if _, ok := acc.Records[resource]; !ok {
		return false, fmt.Errorf("resource %q: %w", resource, common.ErrNotFound)
	}
	if !confirmed {
		return false, nil
	}

	delete(acc.Records, resource)
	k.log.Debug(ctx, "record deleted", "resource", resource)
	return true, nil
}

// DecryptRecord recovers the plaintext password of a record.
func (k *Keychain) DecryptRecord(rec models.Record) string {
	return k.alpha.Decrypt(rec.Encrypted)
}

// CreateCustomCategory appends a new category to the account and persists
// the store. The name must be non-empty and distinct from every builtin
// and custom category of the account.
func (k *Keychain) CreateCustomCategory(ctx context.Context, acc *models.Account, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("category name must not be empty: %w", common.ErrInvalidInput)
	}
	if acc.HasCategory(name) {
		return "", fmt.Errorf("category %q: %w", name, common.ErrAlreadyExists)
	}

	acc.CustomCategories = append(acc.CustomCategories, name)
	if err := k.Save(ctx); err != nil {
		acc.CustomCategories = acc.CustomCategories[:len(acc.CustomCategories)-1]
		return "", err
	}

	k.log.Info(ctx, "custom category created", "category", name)
	return name, nil
}
