// Package navigator models the screen flow of the application as a closed
// set of screens and an explicit transition table.
//
//	Intro -> Auth -> Menu <-> Adventure
//	                 Menu <-> Goals
//	                 Menu  -> Auth (logout)
//
// Menu, Adventure and Goals require an authenticated session. Exit is
// possible from any screen.
package navigator

import (
	"context"
	"errors"
	"fmt"
)

type Screen int

const (
	Intro Screen = iota
	Auth
	Menu
	Adventure
	Goals
)

var (
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	ErrNotAuthenticated     = errors.New("login required")
	ErrExited               = errors.New("navigator has exited")
)

func (s Screen) String() string {
	switch s {
	case Intro:
		return "intro"
	case Auth:
		return "auth"
	case Menu:
		return "menu"
	case Adventure:
		return "adventure"
	case Goals:
		return "goals"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// Screens lists every screen in declaration order.
func Screens() []Screen {
	return []Screen{Intro, Auth, Menu, Adventure, Goals}
}

// RequiresAuth reports whether s is only reachable with a logged-in user.
func (s Screen) RequiresAuth() bool {
	switch s {
	case Menu, Adventure, Goals:
		return true
	}
	return false
}

var transitions = map[Screen][]Screen{
	Intro:     {Auth},
	Auth:      {Menu},
	Menu:      {Adventure, Goals, Auth},
	Adventure: {Menu},
	Goals:     {Menu},
}

// Allowed reports whether the table permits moving from one screen to another.
func Allowed(from, to Screen) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Page is a screen plus its optional lifecycle hook. A nil OnShow is a no-op.
type Page struct {
	Screen Screen
	OnShow func(ctx context.Context)
}

func (p Page) show(ctx context.Context) {
	if p.OnShow != nil {
		p.OnShow(ctx)
	}
}

// Navigator tracks the active screen. It is not safe for concurrent use.
type Navigator struct {
	pages         map[Screen]Page
	current       Screen
	started       bool
	exited        bool
	authenticated func() bool
}

// New builds a navigator over pages. authenticated is consulted before
// entering a screen that requires a login; nil means nobody is logged in.
func New(authenticated func() bool, pages ...Page) *Navigator {
	n := &Navigator{
		pages:         make(map[Screen]Page, len(Screens())),
		authenticated: authenticated,
	}
	for _, s := range Screens() {
		n.pages[s] = Page{Screen: s}
	}
	for _, p := range pages {
		n.pages[p.Screen] = p
	}
	return n
}

// Start shows the intro screen. Calling it again restarts the flow.
func (n *Navigator) Start(ctx context.Context) {
	n.current = Intro
	n.started = true
	n.exited = false
	n.pages[Intro].show(ctx)
}

func (n *Navigator) Current() Screen {
	return n.current
}

// Show switches to the target screen and runs its OnShow hook.
func (n *Navigator) Show(ctx context.Context, to Screen) error {
	if n.exited {
		return ErrExited
	}
	if !n.started {
		n.Start(ctx)
	}
	if !Allowed(n.current, to) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, n.current, to)
	}
	if to.RequiresAuth() && (n.authenticated == nil || !n.authenticated()) {
		return fmt.Errorf("%w: %s", ErrNotAuthenticated, to)
	}
	n.current = to
	n.pages[to].show(ctx)
	return nil
}

// Exit terminates the flow from any screen.
func (n *Navigator) Exit() {
	n.exited = true
}

func (n *Navigator) Exited() bool {
	return n.exited
}
