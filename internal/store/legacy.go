package store

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/capitalchronicles/internal/common"
	"github.com/dmitrijs2005/capitalchronicles/internal/filex"
	"github.com/dmitrijs2005/capitalchronicles/internal/logging"
	"github.com/dmitrijs2005/capitalchronicles/internal/models"
)

// LegacyStore reads and writes the comma-delimited account file, one
// "username,password_hash" pair per line. It has no room for user data:
// goals and savings load empty and are dropped on save.
type LegacyStore struct {
	path   string
	logger logging.Logger
}

func NewLegacyStore(path string, logger logging.Logger) *LegacyStore {
	return &LegacyStore{path: path, logger: logger.With("store", KindLegacy, "path", path)}
}

// Load skips malformed lines. When a username repeats, the first line wins.
func (s *LegacyStore) Load(ctx context.Context) (models.Accounts, error) {
	data, ok, err := filex.ReadIfExists(s.path)
	if err != nil {
		return models.Accounts{}, fmt.Errorf("%w: read %s: %v", common.ErrPersistenceUnavailable, s.path, err)
	}
	accounts := models.Accounts{}
	if !ok {
		return accounts, nil
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		name, hash, found := strings.Cut(line, ",")
		if !found || name == "" || hash == "" || strings.Contains(hash, ",") {
			s.logger.Warn(ctx, "skipping malformed account line", "line", lineNo)
			continue
		}
		if _, dup := accounts[name]; dup {
			s.logger.Warn(ctx, "duplicate username in account file", "line", lineNo)
			continue
		}
		accounts[name] = models.Account{PasswordHash: hash}
	}
	if err := sc.Err(); err != nil {
		s.logger.Warn(ctx, "account file could not be fully read", "error", err)
	}
	return accounts, nil
}

// Save rewrites the whole file in username order.
func (s *LegacyStore) Save(ctx context.Context, accounts models.Accounts) error {
	var buf bytes.Buffer
	for _, name := range accounts.Usernames() {
		if strings.ContainsAny(name, ",\r\n") {
			return fmt.Errorf("%w: username %q cannot be stored in the legacy format", common.ErrInvalidInput, name)
		}
		fmt.Fprintf(&buf, "%s,%s\n", name, accounts[name].PasswordHash)
	}
	if err := filex.WriteFile(s.path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistenceUnavailable, err)
	}
	return nil
}

func (s *LegacyStore) Close() error { return nil }
