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
	Products(ctx context.Context) error
	Signup(ctx context.Context) error
	Verify(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Order(ctx context.Context, productID string) error
	Contact(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Pulse CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures as notices.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pulse %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: products, order [500ml|1.5L], contact, whoami, logout, exit")
			} else {
				printlnFn("Available commands: products, signup, verify, login, order [500ml|1.5L], contact, exit")
			}

		case "products", "p":
			_ = a.Products(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "verify", "otp":
			_ = a.Verify(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "order":
			productID := ""
			if len(args) > 0 {
				productID = args[0]
			}
			_ = a.Order(ctx, productID)

		case "contact":
			_ = a.Contact(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
