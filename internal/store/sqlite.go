package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/capitalchronicles/internal/common"
	"github.com/dmitrijs2005/capitalchronicles/internal/dbx"
	"github.com/dmitrijs2005/capitalchronicles/internal/logging"
	"github.com/dmitrijs2005/capitalchronicles/internal/models"
)

// SQLiteStore keeps one row per account; the user data column holds the
// same JSON object the JSON store writes under "data".
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
}

func NewSQLiteStore(db *sql.DB, logger logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, logger: logger.With("store", KindSQLite)}
}

// OpenSQLite initialises the database file at path and wraps it in a store.
func OpenSQLite(ctx context.Context, path string, logger logging.Logger) (*SQLiteStore, error) {
	db, err := InitDatabase(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPersistenceUnavailable, err)
	}
	return NewSQLiteStore(db, logger), nil
}

// Load reads every row. A row whose data column cannot be decoded keeps its
// credentials and gets empty user data.
func (s *SQLiteStore) Load(ctx context.Context) (models.Accounts, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username, password_hash, data FROM accounts ORDER BY username`)
	if err != nil {
		return models.Accounts{}, fmt.Errorf("%w: failed to select accounts: %v", common.ErrPersistenceUnavailable, err)
	}
	defer rows.Close()

	accounts := models.Accounts{}
	for rows.Next() {
		var (
			name string
			acc  models.Account
			raw  string
		)
		if err := rows.Scan(&name, &acc.PasswordHash, &raw); err != nil {
			return models.Accounts{}, fmt.Errorf("%w: failed to scan account row: %v", common.ErrPersistenceUnavailable, err)
		}
		if err := json.Unmarshal([]byte(raw), &acc.Data); err != nil {
			s.logger.Warn(ctx, "discarding unreadable user data", "username", name, "error", err)
			acc.Data = models.UserData{}
		}
		accounts[name] = acc
	}
	if err := rows.Err(); err != nil {
		return models.Accounts{}, fmt.Errorf("%w: failed to iterate account rows: %v", common.ErrPersistenceUnavailable, err)
	}
	return accounts, nil
}

// Save replaces the table contents with accounts in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, accounts models.Accounts) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
			return fmt.Errorf("failed to clear accounts: %w", err)
		}
		for _, name := range accounts.Usernames() {
			acc := accounts[name]
			data, err := json.Marshal(acc.Data)
			if err != nil {
				return fmt.Errorf("encode data for %s: %w", name, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO accounts (username, password_hash, data) VALUES (?, ?, ?)`,
				name, acc.PasswordHash, string(data)); err != nil {
				return fmt.Errorf("failed to insert account %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistenceUnavailable, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
