package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/capitalchronicles/internal/navigator"
)

const title = "CapitalChronicles"

func (a *App) pages() []navigator.Page {
	return []navigator.Page{
		{Screen: navigator.Intro, OnShow: a.showIntro},
		{Screen: navigator.Auth, OnShow: a.showAuth},
		{Screen: navigator.Menu, OnShow: a.showMenu},
		{Screen: navigator.Adventure, OnShow: a.showAdventure},
		{Screen: navigator.Goals, OnShow: a.showGoals},
	}
}

func (a *App) showIntro(context.Context) {
	TypeOut(a.out, title, a.config.TypingDelay)
	a.println("Scripting Your Financial Epic Adventure")
	a.println("Type 'start' to begin your journey.")
}

func (a *App) showAuth(context.Context) {
	a.println("Welcome Back, Traveler")
	a.println("Type 'login' or 'signup'.")
}

func (a *App) showMenu(context.Context) {
	a.println(fmt.Sprintf("Welcome, %s!", a.session.Username()))
	a.println("Type 'adventure', 'goals' or 'logout'.")
}

func (a *App) showAdventure(context.Context) {
	a.println("== Your Financial Chapter ==")
	a.println("Type 'calc' to run the calculator or 'back' for the menu.")
}

func (a *App) showGoals(ctx context.Context) {
	a.println("== Scripted Quests ==")
	a.println("Track your financial quests and mark them as completed.")
	_ = a.ListQuests(ctx)
}

// Start leaves the intro for the auth screen.
func (a *App) Start(ctx context.Context) error {
	if err := a.nav.Show(ctx, navigator.Auth); err != nil {
		return a.fail(ctx, "start", err)
	}
	return nil
}

// Open moves from the menu to one of its sub-screens.
func (a *App) Open(ctx context.Context, to navigator.Screen) error {
	if err := a.nav.Show(ctx, to); err != nil {
		return a.fail(ctx, "open "+to.String(), err)
	}
	return nil
}

// Back returns to the menu.
func (a *App) Back(ctx context.Context) error {
	return a.Open(ctx, navigator.Menu)
}
