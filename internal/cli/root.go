package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Pending(ctx context.Context) error
	Approve(ctx context.Context, username string) error
	Reject(ctx context.Context, username string) error
	Prayers(ctx context.Context) error
	AddPrayer(ctx context.Context) error
	Pray(ctx context.Context, id string) error
	DeletePrayer(ctx context.Context, id string) error
	Videos(ctx context.Context) error
	AddVideo(ctx context.Context) error
	DeleteVideo(ctx context.Context, id string) error
	Schedule(ctx context.Context) error
	AddEvent(ctx context.Context) error
	Live(ctx context.Context, id string) error
	DeleteEvent(ctx context.Context, id string) error
	Cloud(ctx context.Context) error
	SetCloud(ctx context.Context) error
	Books(ctx context.Context) error
	Read(ctx context.Context, args []string) error
	Devotional(ctx context.Context) error
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("grace %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Community: prayers, addprayer, pray <id>, videos, schedule, cloud")
			printlnFn("Scripture: books, read <book> <chapter>, devotional")
			if a.isLoggedIn() {
				printlnFn("Pastoral: addvideo, delvideo <id>, addevent, live <id|off>, delevent <id>, delprayer <id>, whoami, logout")
			} else {
				printlnFn("Account: login, register")
			}
			if a.isAdmin() {
				printlnFn("Admin: pending, approve <user>, reject <user>, setcloud")
			}
			printlnFn("Type 'exit' to leave.")

		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)

		case "pending":
			_ = a.Pending(ctx)
		case "approve":
			_ = a.Approve(ctx, firstArg(args))
		case "reject":
			_ = a.Reject(ctx, firstArg(args))

		case "prayers":
			_ = a.Prayers(ctx)
		case "addprayer":
			_ = a.AddPrayer(ctx)
		case "pray":
			if len(args) == 0 {
				printlnFn("Usage: pray <id>")
				continue
			}
			_ = a.Pray(ctx, args[0])
		case "delprayer":
			if len(args) == 0 {
				printlnFn("Usage: delprayer <id>")
				continue
			}
			_ = a.DeletePrayer(ctx, args[0])

		case "videos":
			_ = a.Videos(ctx)
		case "addvideo":
			_ = a.AddVideo(ctx)
		case "delvideo":
			if len(args) == 0 {
				printlnFn("Usage: delvideo <id>")
				continue
			}
			_ = a.DeleteVideo(ctx, args[0])

		case "schedule":
			_ = a.Schedule(ctx)
		case "addevent":
			_ = a.AddEvent(ctx)
		case "live":
			if len(args) == 0 {
				printlnFn("Usage: live <id> (or 'live off')")
				continue
			}
			_ = a.Live(ctx, args[0])
		case "delevent":
			if len(args) == 0 {
				printlnFn("Usage: delevent <id>")
				continue
			}
			_ = a.DeleteEvent(ctx, args[0])

		case "books":
			_ = a.Books(ctx)
		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <book> <chapter>")
				continue
			}
			_ = a.Read(ctx, args)
		case "devotional":
			_ = a.Devotional(ctx)

		case "cloud":
			_ = a.Cloud(ctx)
		case "setcloud":
			_ = a.SetCloud(ctx)

		case "exit", "quit":
			printlnFn("Go in peace!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s) ", a.session.Username, strings.ToLower(a.session.Role))
}

// Root runs the interactive loop on stdin.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the community CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
