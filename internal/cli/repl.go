package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	AddRecord(ctx context.Context) error
	UpdateRecord(ctx context.Context) error
	DeleteRecord(ctx context.Context) error
	Generate(ctx context.Context) error
	ListAll(ctx context.Context) error
	ListByCategory(ctx context.Context) error
	Search(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the mykeychain CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - add            — add a record
//	  - update         — change a record's password
//	  - delete         — delete a record
//	  - gen            — generate a password without storing it
//	  - list           — show all records grouped by category
//	  - bycat          — show records of one category
//	  - search         — find records by resource name
//	  - logout         — save and leave the session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mykeychain> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, update, delete, gen, (l)ist, bycat, search, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "add":
			_ = a.AddRecord(ctx)

		case "update":
			_ = a.UpdateRecord(ctx)

		case "delete":
			_ = a.DeleteRecord(ctx)

		case "gen":
			_ = a.Generate(ctx)

		case "l", "list":
			_ = a.ListAll(ctx)

		case "bycat":
			_ = a.ListByCategory(ctx)

		case "search":
			_ = a.Search(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
