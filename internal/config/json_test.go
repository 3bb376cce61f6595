package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"store_kind":      "sqlite",
		"store_path":      "/var/lib/cc/accounts.db",
		"password_scheme": "argon2id",
		"log_level":       "info",
		"typing_delay":    "5ms",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"log_level":    "debug",
		"typing_delay": 2000000,
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}
		cfg := &Config{}
		parseJson(cfg)
		assert.Equal(t, "sqlite", cfg.StoreKind)
		assert.Equal(t, "/var/lib/cc/accounts.db", cfg.StorePath)
		assert.Equal(t, "argon2id", cfg.PasswordScheme)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 5*time.Millisecond, cfg.TypingDelay)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", partial}
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)
		assert.Equal(t, "json", cfg.StoreKind)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 2*time.Millisecond, cfg.TypingDelay)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}
		cfg := &Config{StoreKind: "legacy", TypingDelay: 42 * time.Second}
		parseJson(cfg)
		assert.Equal(t, "legacy", cfg.StoreKind)
		assert.Equal(t, 42*time.Second, cfg.TypingDelay)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{"store_kind": "sqlite", "log_level": "info"})
	os.Args = []string{"testbin", "-c", path, "-l", "error"}

	cfg := LoadConfig()
	assert.Equal(t, "sqlite", cfg.StoreKind)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "accounts.db", cfg.ResolvedStorePath())
}
