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
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Nearby(ctx context.Context) error
	People(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Book(ctx context.Context, venueID string) error
	Decorate(ctx context.Context) error
	Chats(ctx context.Context) error
	ClearChat(ctx context.Context, chatID string) error
	DeleteChat(ctx context.Context, chatID string) error
	SwitchMode(mode string) error
}

// runREPL starts a simple read-eval-print loop for the LookDine CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - signup           — create an account (three-step wizard)
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - nearby           — list nearby venues
//	  - people           — list people nearby (filtered in teen mode)
//	  - search <text>    — search venues
//	  - book [venue-id]  — run the booking wizard
//	  - decorate         — browse decorations and manage the cart
//	  - chats            — list chat conversations
//	  - clearchat <id>   — clear a conversation's history
//	  - delchat <id>     — delete a conversation
//	  - mode <teen|adult> — switch audience profile
//	  - profile          — show the signed-in account
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lookdine> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: nearby, people, search, book, decorate, chats, clearchat, delchat, mode, profile, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "nearby":
			_ = a.Nearby(ctx)

		case "people":
			_ = a.People(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "book":
			venueID := ""
			if len(args) > 0 {
				venueID = args[0]
			}
			_ = a.Book(ctx, venueID)

		case "decorate":
			_ = a.Decorate(ctx)

		case "chats":
			_ = a.Chats(ctx)

		case "clearchat":
			if len(args) == 0 {
				printlnFn("Usage: clearchat <id>")
				continue
			}
			_ = a.ClearChat(ctx, args[0])

		case "delchat":
			if len(args) == 0 {
				printlnFn("Usage: delchat <id>")
				continue
			}
			_ = a.DeleteChat(ctx, args[0])

		case "mode":
			if len(args) == 0 {
				printlnFn("Usage: mode <teen|adult>")
				continue
			}
			_ = a.SwitchMode(args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
