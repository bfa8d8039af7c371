package passgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomPassword_Length(t *testing.T) {
	for _, n := range []int{1, 4, 12, 64} {
		pwd, err := RandomPassword(n, true, true)
		require.NoError(t, err)
		require.Len(t, pwd, n)
	}
}

func TestRandomPassword_NonPositiveLength(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		pwd, err := RandomPassword(n, true, true)
		require.NoError(t, err)
		require.Equal(t, "", pwd)
	}
}

func TestRandomPassword_PoolFlags(t *testing.T) {
	// Letters only.
	pwd, err := RandomPassword(256, false, false)
	require.NoError(t, err)
	require.False(t, strings.ContainsAny(pwd, digits))
	require.False(t, strings.ContainsAny(pwd, special))

	// No specials.
	pwd, err = RandomPassword(256, true, false)
	require.NoError(t, err)
	require.False(t, strings.ContainsAny(pwd, special))

	// Full pool: every character must come from it.
	pwd, err = RandomPassword(256, true, true)
	require.NoError(t, err)
	for _, c := range pwd {
		require.True(t, strings.ContainsRune(letters+digits+special, c), "unexpected character %q", c)
	}
}

func TestRandomPassword_NotConstant(t *testing.T) {
	a, err := RandomPassword(32, true, true)
	require.NoError(t, err)
	b, err := RandomPassword(32, true, true)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
