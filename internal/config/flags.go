package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/capitalchronicles/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered with flagx.FilterArgs first so -c/-config and unknown flags do not
// make the parse fail. Bad values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-f", "-p", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.StoreKind, "s", cfg.StoreKind, "account store backend (json, legacy, sqlite)")
	fs.StringVar(&cfg.StorePath, "f", cfg.StorePath, "path of the account store")
	fs.StringVar(&cfg.PasswordScheme, "p", cfg.PasswordScheme, "password hashing scheme (sha256, argon2id)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	typingDelay := fs.Int("t", int(cfg.TypingDelay.Milliseconds()), "intro typing delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	cfg.TypingDelay = time.Duration(*typingDelay) * time.Millisecond
}
