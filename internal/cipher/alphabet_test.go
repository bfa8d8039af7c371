package cipher

import (
	"testing"

	"github.com/dmitrijs2005/mykeychain/internal/common"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabet_Default(t *testing.T) {
	a, err := NewAlphabet(DefaultCharset)
	require.NoError(t, err)
	require.Equal(t, 94, a.Len())
	require.Equal(t, DefaultCharset, a.String())
}

func TestNewAlphabet_TrimsWhitespace(t *testing.T) {
	a, err := NewAlphabet("  abc\n")
	require.NoError(t, err)
	require.Equal(t, "abc", a.String())
	require.Equal(t, 3, a.Len())
}

func TestNewAlphabet_Empty(t *testing.T) {
	for _, s := range []string{"", "   ", "\n\t"} {
		_, err := NewAlphabet(s)
		require.ErrorIs(t, err, common.ErrInvalidInput)
	}
}

func TestNewAlphabet_Duplicates(t *testing.T) {
	_, err := NewAlphabet("abca")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestAlphabet_Contains(t *testing.T) {
	a, err := NewAlphabet(DefaultCharset)
	require.NoError(t, err)

	require.True(t, a.Contains('a'))
	require.True(t, a.Contains('~'))
	require.True(t, a.Contains('0'))
	require.False(t, a.Contains(' '))
	require.False(t, a.Contains('б'))
}

func TestAlternateAlphabet_Transform(t *testing.T) {
	// A tiny alphabet keeps wrap-around arithmetic easy to eyeball.
	a, err := NewAlphabet("abc")
	require.NoError(t, err)

	require.Equal(t, "bca", a.Transform("abc", 1, false))
	require.Equal(t, "abc", a.Transform("bca", 1, true))
	require.Equal(t, "abc", a.Transform("abc", 3, false))
}
