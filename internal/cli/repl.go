package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/capitalchronicles/internal/navigator"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	screen() navigator.Screen
	done() bool
	Start(ctx context.Context) error
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Open(ctx context.Context, to navigator.Screen) error
	Back(ctx context.Context) error
	Calculate(ctx context.Context) error
	AddQuest(ctx context.Context) error
	ToggleQuest(ctx context.Context, number string) error
	DeleteQuest(ctx context.Context, number string) error
	ListQuests(ctx context.Context) error
	Savings(ctx context.Context) error
	Exit(ctx context.Context)
}

// screenCommands lists the commands accepted on each screen, in help order.
var screenCommands = map[navigator.Screen][]string{
	navigator.Intro:     {"start"},
	navigator.Auth:      {"signup", "login"},
	navigator.Menu:      {"adventure", "goals", "logout"},
	navigator.Adventure: {"calc", "back"},
	navigator.Goals:     {"add", "toggle", "delete", "list", "savings", "back"},
}

func available(s navigator.Screen, cmd string) bool {
	for _, c := range screenCommands[s] {
		if c == cmd {
			return true
		}
	}
	return false
}

func helpText(s navigator.Screen) string {
	cmds := append(append([]string{}, screenCommands[s]...), "help", "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}

// runREPL reads commands line by line and dispatches them to a according to
// the active screen. The first token is the command; toggle and delete take
// the quest number as their argument.
//
// The loop exits on EOF, when ctx is cancelled, or once the app reports it is
// done (the user typed "exit" or "quit"). Errors
// returned by handlers are ignored here; handlers report them to the user
// themselves.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for !a.done() {
		if ctx.Err() != nil {
			a.Exit(ctx)
			return
		}
		printlnFn(fmt.Sprintf("cc (%s)> ", a.screen()))
		line, err := readLine(reader)
		if err != nil {
			a.Exit(ctx)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a.screen()))
			continue
		case "exit", "quit":
			a.Exit(ctx)
			printlnFn("Bye!")
			continue
		}

		if !available(a.screen(), cmd) {
			printlnFn("Unknown command:", cmd, "(type 'help')")
			continue
		}

		switch cmd {
		case "start":
			_ = a.Start(ctx)
		case "signup":
			_ = a.SignUp(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "adventure":
			_ = a.Open(ctx, navigator.Adventure)
		case "goals":
			_ = a.Open(ctx, navigator.Goals)
		case "back":
			_ = a.Back(ctx)
		case "calc":
			_ = a.Calculate(ctx)
		case "add":
			_ = a.AddQuest(ctx)
		case "toggle", "delete":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <number>", cmd))
				continue
			}
			if cmd == "toggle" {
				_ = a.ToggleQuest(ctx, args[0])
			} else {
				_ = a.DeleteQuest(ctx, args[0])
			}
		case "list":
			_ = a.ListQuests(ctx)
		case "savings":
			_ = a.Savings(ctx)
		}
	}
}
