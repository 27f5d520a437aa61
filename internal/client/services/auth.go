// Package services contains the application services of the travel planner
// client. They validate form input, talk to the resource API through the
// client package and check every response before handing typed values back.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/travelplanner/internal/client/client"
	"github.com/dmitrijs2005/travelplanner/internal/client/models"
	"github.com/dmitrijs2005/travelplanner/internal/client/query"
	"github.com/dmitrijs2005/travelplanner/internal/client/session"
	"github.com/dmitrijs2005/travelplanner/internal/client/validate"
	"github.com/dmitrijs2005/travelplanner/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: look the account up by credentials; exactly one match logs in.
//   - Register: create a non-admin account. It does not log in.
//   - Logout: forget the stored identity.
//   - Current: the stored identity, nil when logged out.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.Identity, error)
	Register(ctx context.Context, acc models.NewAccount) (models.Account, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Identity, error)
}

type authService struct {
	users   *client.Resource
	session *session.Store
	log     logging.Logger
}

func NewAuthService(api *client.APIClient, store *session.Store, log logging.Logger) AuthService {
	return &authService{users: api.Accounts(), session: store, log: log}
}

// Login returns ErrInvalidCredentials unless the lookup yields exactly one
// well-formed account. On success the identity is stored.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Identity, error) {
	if err := creds.Validate(); err != nil {
		return models.Identity{}, err
	}

	body, err := a.users.List(ctx, query.Login(creds))
	if err != nil {
		return models.Identity{}, fmt.Errorf("login lookup: %w", err)
	}

	acc, err := validate.LoginMatch(body)
	if err != nil {
		a.log.Info(ctx, "login rejected", "username", creds.Username, "reason", err)
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	id := acc.Identity()
	if err := a.session.Establish(ctx, id); err != nil {
		return models.Identity{}, err
	}
	return id, nil
}

func (a *authService) Register(ctx context.Context, acc models.NewAccount) (models.Account, error) {
	acc.IsAdmin = false
	if err := acc.Validate(); err != nil {
		return models.Account{}, err
	}

	body, err := a.users.Create(ctx, acc)
	if err != nil {
		return models.Account{}, fmt.Errorf("register: %w", err)
	}
	created, err := validate.Account(body)
	if err != nil {
		return models.Account{}, fmt.Errorf("register: %w", err)
	}
	a.log.Info(ctx, "account registered", "username", created.Username)
	return created, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

// Current never fails: an unreadable store is reported at warn and treated
// as logged out.
func (a *authService) Current(ctx context.Context) (*models.Identity, error) {
	id, err := a.session.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "session unreadable, treating as logged out", "err", err)
		return nil, nil
	}
	return id, nil
}
