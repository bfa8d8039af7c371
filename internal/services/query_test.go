package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/mykeychain/internal/common"
	"github.com/dmitrijs2005/mykeychain/internal/models"
	"github.com/stretchr/testify/require"
)

func seededAccount(t *testing.T, k *Keychain) *models.Account {
	t.Helper()
	acc := accountWith(t, k)
	ctx := context.Background()

	require.NoError(t, k.AddRecord(ctx, acc, "Google.com", "g-pass1", "Email"))
	require.NoError(t, k.AddRecord(ctx, acc, "bank.example", "b-pass2", "Banking/Finance"))
	require.NoError(t, k.AddRecord(ctx, acc, "amail.example", "a-pass3", "Email"))
	require.NoError(t, k.AddRecord(ctx, acc, "shop.example", "s-pass4", "Shopping"))
	return acc
}

func TestListByCategory_SortedAndDecrypted(t *testing.T) {
	k, _ := newTestKeychain(t)
	acc := seededAccount(t, k)

	entries := k.ListByCategory(acc, "Email")
	require.Equal(t, []Entry{
		{Resource: "Google.com", Password: "g-pass1"},
		{Resource: "amail.example", Password: "a-pass3"},
	}, entries)
}

func TestListByCategory_EmptyResult(t *testing.T) {
	k, _ := newTestKeychain(t)
	acc := seededAccount(t, k)

	entries := k.ListByCategory(acc, "Government Services")
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	k, _ := newTestKeychain(t)
	acc := seededAccount(t, k)

	found, err := k.Search(acc, "goo")
	require.NoError(t, err)
	require.Equal(t, []SearchEntry{
		{Resource: "Google.com", Password: "g-pass1", Category: "Email"},
	}, found)
}

func TestSearch_SortedByResource(t *testing.T) {
	k, _ := newTestKeychain(t)
	acc := seededAccount(t, k)

	found, err := k.Search(acc, "example")
	require.NoError(t, err)
	require.Len(t, found, 3)
	require.Equal(t, "amail.example", found[0].Resource)
	require.Equal(t, "bank.example", found[1].Resource)
	require.Equal(t, "shop.example", found[2].Resource)
}

func TestSearch_EmptyTermRejected(t *testing.T) {
	k, _ := newTestKeychain(t)
	acc := seededAccount(t, k)

	_, err := k.Search(acc, "")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSearch_NoHits(t *testing.T) {
	k, _ := newTestKeychain(t)
	acc := seededAccount(t, k)

	found, err := k.Search(acc, "nothing-matches")
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestListAll_GroupedAndSorted(t *testing.T) {
	k, _ := newTestKeychain(t)
	acc := seededAccount(t, k)

	groups := k.ListAll(acc)
	require.Len(t, groups, 3)
	require.Equal(t, "Banking/Finance", groups[0].Category)
	require.Equal(t, "Email", groups[1].Category)
	require.Equal(t, "Shopping", groups[2].Category)

	require.Equal(t, []Entry{
		{Resource: "Google.com", Password: "g-pass1"},
		{Resource: "amail.example", Password: "a-pass3"},
	}, groups[1].Entries)
}

func TestListAll_EmptyAccount(t *testing.T) {
	k, _ := newTestKeychain(t)
	acc := accountWith(t, k)

	require.Empty(t, k.ListAll(acc))
}
