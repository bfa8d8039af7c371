package models

import (
	"testing"

	"github.com/dmitrijs2005/mykeychain/internal/common"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_OK(t *testing.T) {
	acc, err := NewAccount("bob", "secret1", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, acc.ID)
	require.Equal(t, "secret1", acc.MasterSecret)
	require.NotNil(t, acc.Records)
	require.Empty(t, acc.Records)
	require.Empty(t, acc.CustomCategories)
}

func TestNewAccount_Validation(t *testing.T) {
	tests := []struct {
		name    string
		login   string
		secret  string
		confirm string
	}{
		{"empty login", "", "secret1", "secret1"},
		{"short secret", "bob", "abc", "abc"},
		{"mismatch", "bob", "secret1", "secret2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAccount(tc.login, tc.secret, tc.confirm)
			require.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestNewAccount_SecretLengthInRunes(t *testing.T) {
	// Six Cyrillic characters are six characters, not twelve bytes.
	_, err := NewAccount("bob", "пароль", "пароль")
	require.NoError(t, err)
}

func TestBuiltinCategories_FreshCopy(t *testing.T) {
	a := BuiltinCategories()
	require.Len(t, a, 10)

	a[0] = "mutated"
	b := BuiltinCategories()
	require.Equal(t, "Social Networks", b[0])
}

func TestAccountCategories(t *testing.T) {
	acc, err := NewAccount("bob", "secret1", "secret1")
	require.NoError(t, err)
	acc.CustomCategories = append(acc.CustomCategories, "Gaming")

	all := acc.Categories()
	require.Len(t, all, 11)
	require.Equal(t, "Gaming", all[10])

	require.True(t, acc.HasCategory("Email"))
	require.True(t, acc.HasCategory("Gaming"))
	require.False(t, acc.HasCategory("email"))
	require.False(t, acc.HasCategory("Unknown"))
}

func TestStoreAccountLookupIsCaseSensitive(t *testing.T) {
	acc, err := NewAccount("Bob", "secret1", "secret1")
	require.NoError(t, err)

	s := Store{"Bob": acc}
	_, ok := s.Account("bob")
	require.False(t, ok)
	got, ok := s.Account("Bob")
	require.True(t, ok)
	require.Same(t, acc, got)
}
