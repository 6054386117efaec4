package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Open(ctx context.Context, path string) error
	List(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// runREPL starts a simple read–eval–print loop for the postdesk CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Prompts and replies go to w, the same
// writer the App renders its screens to. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — log in (no credentials needed)
//	  - open <path>    — go to /login, /dashboard or /crud
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - open <path>    — go to /login, /dashboard or /crud
//	  - dashboard      — go to /dashboard
//	  - posts | crud   — go to /crud and load posts
//	  - (l)ist         — show the posts screen again
//	  - create         — create a post
//	  - edit <id>      — edit a post
//	  - save | cancel  — send or discard the open edit
//	  - delete <id>    — delete a post
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "pd %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: open <path>, dashboard, posts, (l)ist, create, edit <id>, save, cancel, delete <id>, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, open <path>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "open":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "dashboard":
			_ = a.Open(ctx, "/dashboard")

		case "posts", "crud":
			_ = a.Open(ctx, "/crud")

		case "l", "list":
			_ = a.List(ctx)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "save":
			_ = a.Save(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "delete":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
