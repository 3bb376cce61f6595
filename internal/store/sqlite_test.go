package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/capitalchronicles/internal/common"
	"github.com/dmitrijs2005/capitalchronicles/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() logging.Logger { return logging.Discard() }

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "accounts.db"), discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "nested", "app.db"))
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, tableExists(t, db, "accounts"))
	assert.True(t, tableExists(t, db, "goose_db_version"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
}

func TestSQLiteStore_EmptyDatabaseLoadsEmpty(t *testing.T) {
	s := openTestSQLite(t)
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	require.NoError(t, s.Save(ctx, sampleAccounts()))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(sampleAccounts(), got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Whole-document replace: accounts absent from the new mapping disappear.
	only := sampleAccounts()
	delete(only, "bob")
	require.NoError(t, s.Save(ctx, only))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, got.Usernames())
}

func TestSQLiteStore_BadDataColumnKeepsCredentials(t *testing.T) {
	ctx := context.Background()
	s := openTestSQLite(t)

	_, err := s.db.Exec(`INSERT INTO accounts (username, password_hash, data) VALUES ('eve', 'h', '{broken')`)
	require.NoError(t, err)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Contains(t, got, "eve")
	assert.Equal(t, "h", got["eve"].PasswordHash)
	assert.Empty(t, got["eve"].Data.Goals)
}

func TestSQLiteStore_OpenUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, writeBlocker(blocker))

	_, err := OpenSQLite(context.Background(), filepath.Join(blocker, "accounts.db"), discard())
	require.ErrorIs(t, err, common.ErrPersistenceUnavailable)
}

func TestSQLiteStore_LoadQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT username, password_hash, data FROM accounts`)).
		WillReturnError(errors.New("no such table"))

	_, err = NewSQLiteStore(db, discard()).Load(context.Background())
	require.ErrorIs(t, err, common.ErrPersistenceUnavailable)
	require.Contains(t, err.Error(), "failed to select accounts")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SaveInsertErrorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM accounts`)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts`)).
		WithArgs("alice", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err = NewSQLiteStore(db, discard()).Save(context.Background(), sampleAccounts())
	require.ErrorIs(t, err, common.ErrPersistenceUnavailable)
	require.Contains(t, err.Error(), "failed to insert account alice")
	require.NoError(t, mock.ExpectationsWereMet())
}
