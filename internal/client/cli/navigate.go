package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/travelplanner/internal/client/guard"
)

// Navigate reads the stored identity, asks the guard about path and mounts
// whatever route the navigation ends at.
func (a *App) Navigate(ctx context.Context, path string) error {
	ident, err := a.authService.Current(ctx)
	if err != nil {
		return err
	}
	a.identity = ident

	to, d, err := guard.Resolve(path, ident)
	if err != nil {
		if errors.Is(err, guard.ErrUnknownRoute) {
			a.println("Page not found:", path)
		}
		return err
	}
	if !d.Admit {
		a.log.Debug(ctx, "navigation redirected", "from", path, "to", to)
		a.println("Redirecting to", to)
	}
	return a.mount(ctx, to)
}

func (a *App) mount(ctx context.Context, path string) error {
	route, params, _ := guard.Match(path)
	a.route = path
	a.planList = nil
	a.userList = nil

	switch route.Pattern {
	case guard.PathHome:
		a.homeView()
		return nil
	case guard.PathLogin:
		return a.loginView(ctx)
	case guard.PathRegister:
		return a.registerView(ctx)
	case guard.PathDashboard:
		a.dashboardView()
		return nil
	case guard.PathPlans:
		return a.plansView(ctx)
	case guard.PathPlanCreate:
		return a.planFormView(ctx, "")
	case guard.PathPlanEdit:
		return a.planFormView(ctx, params["id"])
	case guard.PathUsers:
		return a.usersView(ctx)
	}
	return nil
}

func (a *App) homeView() {
	a.println("Travel Planner")
	a.println("Plan your next trip and keep all your travel ideas in one place.")
	a.println("Type 'login' to sign in or 'register' to create an account.")
}

// menu lists the sections the current identity can open.
func (a *App) menu() string {
	items := []string{"Dashboard (dashboard)", "Travel Plans (plans)"}
	if a.isAdmin() {
		items = append(items, "User Management (users)")
	}
	items = append(items, "Logout (logout)")
	return "Menu: " + strings.Join(items, " | ")
}
