package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/mykeychain/internal/common"
	"github.com/dmitrijs2005/mykeychain/internal/models"
)

// Entry is one decrypted record in a listing.
type Entry struct {
	Resource string
	Password string
}

// SearchEntry is one decrypted search hit, with its category.
type SearchEntry struct {
	Resource string
	Password string
	Category string
}

// CategoryGroup is all records of one category, decrypted and sorted.
type CategoryGroup struct {
	Category string
	Entries  []Entry
}

// ListByCategory returns the decrypted records whose category equals
// category exactly, sorted ascending by resource name. An empty result is
// not an error.
func (k *Keychain) ListByCategory(acc *models.Account, category string) []Entry {
	entries := make([]Entry, 0)
	for resource, rec := range acc.Records {
		if rec.Category != category {
			continue
		}
		entries = append(entries, Entry{Resource: resource, Password: k.DecryptRecord(rec)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Resource < entries[j].Resource })
	return entries
}

// Search matches substring case-insensitively against resource names and
// returns the decrypted hits sorted ascending by resource name. An empty
// substring is an invalid query and yields common.ErrInvalidInput.
func (k *Keychain) Search(acc *models.Account, substring string) ([]SearchEntry, error) {
	if substring == "" {
		return nil, fmt.Errorf("search term must not be empty: %w", common.ErrInvalidInput)
	}

	term := strings.ToLower(substring)
	found := make([]SearchEntry, 0)
	for resource, rec := range acc.Records {
		if !strings.Contains(strings.ToLower(resource), term) {
			continue
		}
		found = append(found, SearchEntry{
			Resource: resource,
			Password: k.DecryptRecord(rec),
			Category: rec.Category,
		})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Resource < found[j].Resource })
	return found, nil
}

// ListAll groups every record of the account by category. Groups are
// sorted ascending by category name, entries within a group ascending by
// resource name.
func (k *Keychain) ListAll(acc *models.Account) []CategoryGroup {
	byCategory := make(map[string][]Entry)
	for resource, rec := range acc.Records {
		byCategory[rec.Category] = append(byCategory[rec.Category],
			Entry{Resource: resource, Password: k.DecryptRecord(rec)})
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for category, entries := range byCategory {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Resource < entries[j].Resource })
		groups = append(groups, CategoryGroup{Category: category, Entries: entries})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Category < groups[j].Category })
	return groups
}
