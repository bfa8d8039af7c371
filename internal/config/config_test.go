package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"mykeychain"}, args...)
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "users.json", cfg.UsersFile)
	require.Equal(t, "charset.txt", cfg.CharsetFile)
}

func TestLoadConfig_Flags(t *testing.T) {
	withArgs(t, "-u", "/tmp/store.json", "-s", "/tmp/abc.txt")

	cfg := LoadConfig()
	require.Equal(t, "/tmp/store.json", cfg.UsersFile)
	require.Equal(t, "/tmp/abc.txt", cfg.CharsetFile)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users_file":"from-json.json"}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "from-json.json", cfg.UsersFile)
	// Fields absent from the JSON keep their defaults.
	require.Equal(t, "charset.txt", cfg.CharsetFile)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users_file":"from-json.json"}`), 0o600))

	withArgs(t, "-c", path, "-u", "from-flag.json")

	cfg := LoadConfig()
	require.Equal(t, "from-flag.json", cfg.UsersFile)
}

func TestLoadConfig_BadJsonPanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	withArgs(t, "-c", path)

	require.Panics(t, func() { LoadConfig() })
}
