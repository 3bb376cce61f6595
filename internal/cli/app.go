package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/capitalchronicles/internal/config"
	"github.com/dmitrijs2005/capitalchronicles/internal/cryptox"
	"github.com/dmitrijs2005/capitalchronicles/internal/logging"
	"github.com/dmitrijs2005/capitalchronicles/internal/navigator"
	"github.com/dmitrijs2005/capitalchronicles/internal/services"
	"github.com/dmitrijs2005/capitalchronicles/internal/session"
	"github.com/dmitrijs2005/capitalchronicles/internal/store"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    store.Store
	accounts services.AccountService
	quests   services.QuestService
	session  *session.Session
	nav      *navigator.Navigator
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp builds the application from c. A store that cannot be opened is
// replaced by an in-memory one so the program still starts; nothing is
// persisted in that case.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	hasher, err := cryptox.NewHasher(c.PasswordScheme)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, c.StoreKind, c.ResolvedStorePath(), logger)
	if err != nil {
		logger.Warn(ctx, "account store unavailable, changes will not be saved",
			"kind", c.StoreKind, "path", c.ResolvedStorePath(), "error", err)
		st = store.NewMemoryStore()
	}

	a := newApp(ctx, c, logger, st, hasher, bufio.NewReader(os.Stdin), os.Stdout)
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, st store.Store,
	hasher cryptox.Hasher, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		logger:  logger,
		store:   st,
		session: session.New(),
		reader:  reader,
		out:     out,
	}
	a.accounts = services.NewAccountService(ctx, st, hasher, logger)
	a.quests = services.NewQuestService(a.accounts, a.session)
	a.nav = navigator.New(a.session.LoggedIn, a.pages()...)

	logger.Debug(ctx, "accounts loaded", "count", len(a.accounts.Accounts()))
	return a
}

// Run shows the intro screen and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer func() {
		a.session.Clear()
		if err := a.store.Close(); err != nil {
			a.logger.Error(ctx, "closing store", "error", err)
		}
	}()

	a.nav.Start(ctx)
	runREPL(ctx, a, a.reader)
}

func (a *App) screen() navigator.Screen {
	return a.nav.Current()
}

func (a *App) done() bool {
	return a.nav.Exited()
}

// Exit ends the navigator flow and drops the session.
func (a *App) Exit(ctx context.Context) {
	a.nav.Exit()
	a.session.Clear()
	a.logger.Debug(ctx, "exit requested")
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// fail reports err to the user and returns it unchanged.
func (a *App) fail(ctx context.Context, op string, err error) error {
	a.logger.Debug(ctx, op+" failed", "error", err)
	a.println(userMessage(err))
	return err
}
