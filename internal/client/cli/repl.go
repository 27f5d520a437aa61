package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/travelplanner/internal/client/guard"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Navigate(ctx context.Context, path string) error
	Logout(ctx context.Context) error
	DeletePlan(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}

// runREPL starts a read–eval–print loop for the travel planner client.
//
// Most commands are navigations: they name a route and leave the decision
// about what is actually shown to the route guard. The loop exits on EOF or
// when the user types "exit" or "quit".
//
//	Anyone:
//	  - help                 show available commands
//	  - home                 go to /
//	  - login | register     open the form
//	  - go <path>            navigate to any route
//	  - exit | quit          leave the program
//
//	Logged in:
//	  - dashboard            profile summary
//	  - plans                list travel plans
//	  - plan new             create a plan
//	  - plan edit <id>       edit a plan
//	  - plan delete <id>     delete a plan
//	  - logout
//
//	Administrators:
//	  - users                list user accounts
//	  - user delete <id>     delete an account
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tp %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a))

		case "home":
			_ = a.Navigate(ctx, guard.PathHome)

		case "login":
			_ = a.Navigate(ctx, guard.PathLogin)

		case "register":
			_ = a.Navigate(ctx, guard.PathRegister)

		case "dashboard":
			_ = a.Navigate(ctx, guard.PathDashboard)

		case "plans":
			_ = a.Navigate(ctx, guard.PathPlans)

		case "plan":
			runPlanCommand(ctx, a, args)

		case "users":
			_ = a.Navigate(ctx, guard.PathUsers)

		case "user":
			if len(args) != 2 || args[0] != "delete" {
				printlnFn("Usage: user delete <id>")
				continue
			}
			_ = a.DeleteUser(ctx, args[1])

		case "go":
			if len(args) != 1 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Navigate(ctx, args[0])

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

func runPlanCommand(ctx context.Context, a execIface, args []string) {
	switch {
	case len(args) == 1 && args[0] == "new":
		_ = a.Navigate(ctx, guard.PathPlanCreate)
	case len(args) == 2 && args[0] == "edit":
		_ = a.Navigate(ctx, guard.Expand(guard.PathPlanEdit, map[string]string{"id": args[1]}))
	case len(args) == 2 && args[0] == "delete":
		_ = a.DeletePlan(ctx, args[1])
	default:
		printlnFn("Usage: plan new | plan edit <id> | plan delete <id>")
	}
}

func helpText(a execIface) string {
	switch {
	case a.isAdmin():
		return "Available commands: dashboard, plans, plan new|edit <id>|delete <id>, users, user delete <id>, go <path>, logout, exit"
	case a.isLoggedIn():
		return "Available commands: dashboard, plans, plan new|edit <id>|delete <id>, go <path>, logout, exit"
	default:
		return "Available commands: home, login, register, go <path>, exit"
	}
}
