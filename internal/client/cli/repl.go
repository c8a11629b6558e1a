package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/stockkeeper/internal/client/gate"
	"github.com/dmitrijs2005/stockkeeper/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var errNoSuchPage = errors.New("page out of range")

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	sessionState() session.State

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Entries(ctx context.Context) error
	Search(ctx context.Context, term string) error
	ClearSearch(ctx context.Context) error
	Page(ctx context.Context, n int) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Refresh(ctx context.Context) error

	AddEntry(ctx context.Context) error
	EditEntry(ctx context.Context, id int64) error
	RemoveEntry(ctx context.Context, id int64) error

	Units(ctx context.Context, entryID int64) error
	AddUnit(ctx context.Context) error
	EditUnit(ctx context.Context, id int64) error
	RemoveUnit(ctx context.Context, id int64) error
	Toggle(ctx context.Context, id int64) error
	Batch(ctx context.Context) error
}

const (
	guestHelp = "Available commands: register, login, exit"
	userHelp  = "Available commands: entries, search <term>, clear, page <n>, next, prev, refresh, " +
		"add-entry, edit-entry <id>, rm-entry <id>, units <entry id>, add-unit, edit-unit <id>, " +
		"rm-unit <id>, toggle <id>, batch, whoami, logout, exit"
)

// runREPL starts the read-eval-print loop of the stockkeeper CLI.
//
// Each line is split into a command and its arguments and dispatched to a.
// Commands other than help, login, register and exit require a signed-in
// session; login and register are refused once signed in. The loop exits on
// EOF, on exit or quit, or when ctx is cancelled.
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("sk> %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			if a.sessionState().Authenticated() {
				printlnFn(userHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "register":
			if guest(a) {
				_ = a.Register(ctx)
			}

		case "login":
			if guest(a) {
				_ = a.Login(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !dispatch(ctx, a, cmd, rest) {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

// dispatch runs a command that needs a signed-in session. It reports false
// for an unknown command.
func dispatch(ctx context.Context, a execIface, cmd, arg string) bool {
	var run func() error

	switch cmd {
	case "logout":
		run = func() error { return a.Logout(ctx) }
	case "whoami":
		run = func() error { return a.WhoAmI(ctx) }
	case "entries", "l":
		run = func() error { return a.Entries(ctx) }
	case "search":
		run = func() error {
			if arg == "" {
				printlnFn("Usage: search <term>")
				return nil
			}
			return a.Search(ctx, arg)
		}
	case "clear":
		run = func() error { return a.ClearSearch(ctx) }
	case "page":
		run = func() error {
			n, err := strconv.Atoi(arg)
			if err != nil {
				printlnFn("Usage: page <n>")
				return err
			}
			return a.Page(ctx, n)
		}
	case "next":
		run = func() error { return a.Next(ctx) }
	case "prev":
		run = func() error { return a.Prev(ctx) }
	case "refresh":
		run = func() error { return a.Refresh(ctx) }
	case "add-entry":
		run = func() error { return a.AddEntry(ctx) }
	case "edit-entry":
		run = withID(cmd, arg, func(id int64) error { return a.EditEntry(ctx, id) })
	case "rm-entry":
		run = withID(cmd, arg, func(id int64) error { return a.RemoveEntry(ctx, id) })
	case "units":
		run = withID(cmd, arg, func(id int64) error { return a.Units(ctx, id) })
	case "add-unit":
		run = func() error { return a.AddUnit(ctx) }
	case "edit-unit":
		run = withID(cmd, arg, func(id int64) error { return a.EditUnit(ctx, id) })
	case "rm-unit":
		run = withID(cmd, arg, func(id int64) error { return a.RemoveUnit(ctx, id) })
	case "toggle":
		run = withID(cmd, arg, func(id int64) error { return a.Toggle(ctx, id) })
	case "batch":
		run = func() error { return a.Batch(ctx) }
	default:
		return false
	}

	if member(a) {
		_ = run()
	}
	return true
}

func withID(cmd, arg string, fn func(id int64) error) func() error {
	return func() error {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
			return fmt.Errorf("invalid id %q", arg)
		}
		return fn(id)
	}
}

// member applies the signed-in gate and explains a refusal.
func member(a execIface) bool {
	d := gate.Decide(a.sessionState())
	switch {
	case d.Allow:
		return true
	case d.Loading:
		printlnFn("Sign-in in progress, please wait")
	case d.RedirectTarget == gate.LoginPath:
		printlnFn("Please log in first (login or register)")
	}
	return false
}

// guest applies the signed-out gate used by login and register.
func guest(a execIface) bool {
	d := gate.DecideGuest(a.sessionState())
	switch {
	case d.Allow:
		return true
	case d.Loading:
		printlnFn("Sign-in in progress, please wait")
	case d.RedirectTarget == gate.DashboardPath:
		printlnFn("Already logged in; use logout to switch accounts")
	}
	return false
}
