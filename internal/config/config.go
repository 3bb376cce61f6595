package config

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/capitalchronicles/internal/cryptox"
	"github.com/dmitrijs2005/capitalchronicles/internal/store"
)

// Config holds runtime settings for the CapitalChronicles CLI.
//
// StorePath may be empty, in which case ResolvedStorePath picks a file name
// matching StoreKind.
type Config struct {
	StoreKind      string
	StorePath      string
	PasswordScheme string
	LogLevel       string
	TypingDelay    time.Duration
}

var defaultStorePaths = map[string]string{
	store.KindJSON:   "accounts.json",
	store.KindLegacy: "accounts.txt",
	store.KindSQLite: "accounts.db",
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreKind = store.KindJSON
	c.StorePath = ""
	c.PasswordScheme = cryptox.SchemeSHA256
	c.LogLevel = "warn"
	c.TypingDelay = 70 * time.Millisecond
}

// ResolvedStorePath returns StorePath, or the default file for StoreKind.
func (c *Config) ResolvedStorePath() string {
	if c.StorePath != "" {
		return c.StorePath
	}
	return defaultStorePaths[normalizeKind(c.StoreKind)]
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	cfg.StoreKind = normalizeKind(cfg.StoreKind)
	return cfg
}
