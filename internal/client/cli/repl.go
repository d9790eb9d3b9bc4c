package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Check(ctx context.Context, category string) error
	Live(ctx context.Context) error
	Users(ctx context.Context) error
	Ping(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads one command per line and dispatches it. The loop exits on
// EOF or on "exit" / "quit". Command errors are reported by the commands
// themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	fmt.Fprintln(w, "wordsearch CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(w, "ws %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: check <category>, live, users, ping, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, live, users, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "check":
			if len(args) != 1 {
				fmt.Fprintln(w, "Usage: check <category>")
				continue
			}
			_ = a.Check(ctx, args[0])

		case "live":
			_ = a.Live(ctx)

		case "users":
			_ = a.Users(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
