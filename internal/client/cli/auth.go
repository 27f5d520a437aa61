package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/travelplanner/internal/client/guard"
	"github.com/dmitrijs2005/travelplanner/internal/client/models"
	"github.com/dmitrijs2005/travelplanner/internal/client/services"
)

// loginView prompts for credentials. An empty username cancels the form.
// On success the user lands on the dashboard; on failure the message is
// shown and the user stays on the login route.
func (a *App) loginView(ctx context.Context) error {
	a.println("Log in (leave username empty to cancel)")
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		a.println("Cancelled.")
		return nil
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	id, err := a.authService.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		a.log.Debug(ctx, "login failed", "username", username, "err", err)
		a.println(services.Message(services.OpLogin, err))
		return err
	}
	a.log.Info(ctx, "logged in", "username", id.Username, "role", id.Role.String())
	return a.Navigate(ctx, guard.PathDashboard)
}

// registerView prompts for a new account. Administrator accounts cannot be
// created here.
func (a *App) registerView(ctx context.Context) error {
	a.println("Create an account (leave email empty to cancel)")
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		a.println("Cancelled.")
		return nil
	}
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	_, err = a.authService.Register(ctx, models.NewAccount{Email: email, Username: username, Password: password})
	if err != nil {
		a.println("Registration failed:", services.Message(services.OpRegister, err))
		return err
	}
	a.println("Registration successful: Your account has been created. Please log in.")
	return a.Navigate(ctx, guard.PathLogin)
}

func (a *App) dashboardView() {
	a.printf("Welcome, %s!\n", a.identity.Username)
	a.println("Email:", a.identity.Email)
	a.println("Role:", a.identity.Role.String())
	a.println(a.menu())
}

// Logout forgets the stored identity and returns to the login route.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.println("Logout failed:", err)
		return fmt.Errorf("logout: %w", err)
	}
	a.identity = nil
	a.println("Logged out.")
	return a.Navigate(ctx, guard.PathLogin)
}
