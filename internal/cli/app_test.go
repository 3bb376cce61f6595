package cli

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/capitalchronicles/internal/config"
	"github.com/dmitrijs2005/capitalchronicles/internal/cryptox"
	"github.com/dmitrijs2005/capitalchronicles/internal/logging"
	"github.com/dmitrijs2005/capitalchronicles/internal/models"
	"github.com/dmitrijs2005/capitalchronicles/internal/navigator"
	"github.com/dmitrijs2005/capitalchronicles/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func newTestApp(t *testing.T, st store.Store, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t, false, nil, nil)
	silence(t)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.TypingDelay = 0

	var out bytes.Buffer
	a := newApp(context.Background(), cfg, logging.Discard(), st, cryptox.SHA256Hasher{}, readerFromLines(lines...), &out)
	return a, &out
}

// ------------ tests ------------

func TestApp_SessionEndToEnd(t *testing.T) {
	st := store.NewMemoryStore()
	a, out := newTestApp(t, st,
		"start",
		"signup", "alice", "pw",
		"login", "alice", "pw",
		"goals",
		"add", "Save $500",
		"add", "Buy a bike",
		"toggle 1",
		"delete 2",
		"list",
		"back",
		"adventure",
		"calc", "30", "yes", "1000", "300",
		"back",
		"logout",
		"exit",
	)

	a.Run(context.Background())

	text := out.String()
	assert.Contains(t, text, "CapitalChronicles")
	assert.Contains(t, text, "Account created! Please log in.")
	assert.Contains(t, text, "Welcome, alice!")
	assert.Contains(t, text, "1. [x] Save $500")
	assert.Contains(t, text, "Deleted: Buy a bike")
	assert.Contains(t, text, "Taxes: $150.00")
	assert.Contains(t, text, "Leftover: $550.00")

	assert.True(t, a.nav.Exited())
	assert.False(t, a.session.LoggedIn())

	saved, err := st.Load(context.Background())
	require.NoError(t, err)
	require.Contains(t, saved, "alice")
	goals := saved["alice"].Data.Goals
	require.Len(t, goals, 1)
	assert.Equal(t, "Save $500", goals[0].Title)
	assert.True(t, goals[0].Completed)
}

func TestApp_LoginFailureStaysOnAuth(t *testing.T) {
	a, out := newTestApp(t, store.NewMemoryStore(),
		"start",
		"login", "ghost", "pw",
		"goals",
	)

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Invalid username or password.")
	assert.Equal(t, navigator.Auth, a.screen())
	assert.False(t, a.session.LoggedIn())
}

func TestApp_DuplicateSignUp(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(context.Background(), models.Accounts{
		"alice": {PasswordHash: cryptox.HashPassword([]byte("pw"))},
	}))
	a, out := newTestApp(t, st,
		"start",
		"signup", "alice", "other",
		"login", "alice", "pw",
	)

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Username already taken.")
	assert.Contains(t, out.String(), "Welcome, alice!")
}

func TestApp_GoalsErrors(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(context.Background(), models.Accounts{
		"bob": {PasswordHash: cryptox.HashPassword([]byte("pw"))},
	}))
	a, out := newTestApp(t, st,
		"start",
		"login", "bob", "pw",
		"goals",
		"add", "   ",
		"toggle 1",
		"delete x",
		"savings",
	)

	a.Run(context.Background())

	text := out.String()
	assert.Contains(t, text, "No quests yet.")
	assert.Contains(t, text, "Please enter a quest name.")
	assert.Contains(t, text, "No quest with that number.")
	assert.Contains(t, text, `Invalid input: "x" is not a quest number`)
	assert.Contains(t, text, "Current Savings: $0.00")
}

func TestApp_CalculateChildAndBadInput(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(context.Background(), models.Accounts{
		"kid": {PasswordHash: cryptox.HashPassword([]byte("pw"))},
	}))
	a, out := newTestApp(t, st,
		"start",
		"login", "kid", "pw",
		"adventure",
		"calc", "12", "no", "40", "10",
		"calc", "-1", "no", "40", "10",
	)

	a.Run(context.Background())

	text := out.String()
	assert.Contains(t, text, "Status: Child")
	assert.NotContains(t, text, "Taxes:")
	assert.Contains(t, text, "Suggested spending from allowance: $20.00")
	assert.Contains(t, text, "Invalid input: age must not be negative")
}

func TestApp_LogoutRequiresLogin(t *testing.T) {
	a, out := newTestApp(t, store.NewMemoryStore())
	err := a.Logout(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "Please log in first.")
}

func TestNewApp_UnopenableStoreFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.LogLevel = "error"
	cfg.StoreKind = store.KindSQLite
	cfg.StorePath = filepath.Join(blocker, "accounts.db")

	a, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	require.IsType(t, &store.MemoryStore{}, a.store)

	require.NoError(t, a.accounts.SignUp(ctx, "alice", []byte("pw")))
	data, err := a.accounts.Login(ctx, "alice", []byte("pw"))
	require.NoError(t, err)
	assert.Empty(t, data.Goals)
}
