// Package store persists the account document (username -> Account).
//
// Every backend has whole-document semantics: Load returns the full mapping
// and Save replaces it. Backends:
//   - JSONStore: a single pretty-printed JSON object (default).
//   - LegacyStore: "username,password_hash" lines, without per-user data.
//   - SQLiteStore: an accounts table with the user data as a JSON column.
//   - MemoryStore: process-local fallback when nothing else can be opened.
//
// A missing or unparseable file loads as an empty mapping. Write failures are
// reported wrapped in common.ErrPersistenceUnavailable.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/capitalchronicles/internal/logging"
	"github.com/dmitrijs2005/capitalchronicles/internal/models"
)

const (
	KindJSON   = "json"
	KindLegacy = "legacy"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// Store loads and saves the complete account mapping.
type Store interface {
	Load(ctx context.Context) (models.Accounts, error)
	Save(ctx context.Context, accounts models.Accounts) error
	Close() error
}

// Open returns the backend named by kind, rooted at path.
func Open(ctx context.Context, kind, path string, logger logging.Logger) (Store, error) {
	switch strings.ToLower(kind) {
	case "", KindJSON:
		return NewJSONStore(path, logger), nil
	case KindLegacy:
		return NewLegacyStore(path, logger), nil
	case KindSQLite:
		s, err := OpenSQLite(ctx, path, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store kind %q", kind)
}
