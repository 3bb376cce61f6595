package cli

import (
	"context"

	"github.com/dmitrijs2005/capitalchronicles/internal/common"
	"github.com/dmitrijs2005/capitalchronicles/internal/navigator"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp prompts for a username and password and creates the account. The
// user stays on the auth screen and logs in afterwards.
func (a *App) SignUp(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username:", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.accounts.SignUp(ctx, userName, password); err != nil {
		return a.fail(ctx, "sign up", err)
	}

	a.println("Account created! Please log in.")
	return nil
}

// Login prompts for credentials, starts the session and opens the menu.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username:", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	data, err := a.accounts.Login(ctx, userName, password)
	if err != nil {
		return a.fail(ctx, "login", err)
	}

	a.session.Start(userName, data)
	a.logger.Info(ctx, "user logged in", "username", userName)

	if err := a.nav.Show(ctx, navigator.Menu); err != nil {
		a.session.Clear()
		return a.fail(ctx, "login", err)
	}
	return nil
}

// Logout clears the session and goes back to the auth screen.
func (a *App) Logout(ctx context.Context) error {
	if !a.session.LoggedIn() {
		return a.fail(ctx, "logout", common.ErrNotLoggedIn)
	}
	name := a.session.Username()
	a.session.Clear()
	a.logger.Info(ctx, "user logged out", "username", name)

	if err := a.nav.Show(ctx, navigator.Auth); err != nil {
		return a.fail(ctx, "logout", err)
	}
	return nil
}
