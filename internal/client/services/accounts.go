package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/travelplanner/internal/client/client"
	"github.com/dmitrijs2005/travelplanner/internal/client/models"
	"github.com/dmitrijs2005/travelplanner/internal/client/query"
	"github.com/dmitrijs2005/travelplanner/internal/client/validate"
	"github.com/dmitrijs2005/travelplanner/internal/logging"
)

// AccountService is the admin view of user accounts.
type AccountService interface {
	List(ctx context.Context, q query.Query) ([]models.Account, error)
	Delete(ctx context.Context, id string) error
}

type accountService struct {
	users *client.Resource
	log   logging.Logger
}

func NewAccountService(api *client.APIClient, log logging.Logger) AccountService {
	return &accountService{users: api.Accounts(), log: log}
}

func (s *accountService) List(ctx context.Context, q query.Query) ([]models.Account, error) {
	body, err := s.users.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return validate.Accounts(body)
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	s.log.Info(ctx, "user deleted", "id", id)
	return nil
}
