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

// TravelPlanService manages travel plans on the server.
type TravelPlanService interface {
	List(ctx context.Context, q query.Query) ([]models.TravelPlan, error)
	Get(ctx context.Context, id string) (models.TravelPlan, error)
	// Create stores a new plan owned by owner.
	Create(ctx context.Context, owner models.Identity, in models.TravelPlanInput) (models.TravelPlan, error)
	// Update replaces the editable fields of existing. The owner never changes.
	Update(ctx context.Context, existing models.TravelPlan, in models.TravelPlanInput) (models.TravelPlan, error)
	Delete(ctx context.Context, id string) error
}

type travelPlanService struct {
	plans *client.Resource
	log   logging.Logger
}

func NewTravelPlanService(api *client.APIClient, log logging.Logger) TravelPlanService {
	return &travelPlanService{plans: api.TravelPlans(), log: log}
}

func (s *travelPlanService) List(ctx context.Context, q query.Query) ([]models.TravelPlan, error) {
	body, err := s.plans.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list travel plans: %w", err)
	}
	return validate.TravelPlans(body)
}

func (s *travelPlanService) Get(ctx context.Context, id string) (models.TravelPlan, error) {
	body, err := s.plans.Get(ctx, id)
	if err != nil {
		return models.TravelPlan{}, fmt.Errorf("get travel plan %s: %w", id, err)
	}
	return validate.TravelPlan(body)
}

func (s *travelPlanService) Create(ctx context.Context, owner models.Identity, in models.TravelPlanInput) (models.TravelPlan, error) {
	if err := in.Validate(); err != nil {
		return models.TravelPlan{}, err
	}
	body, err := s.plans.Create(ctx, in.Payload(owner.Username))
	if err != nil {
		return models.TravelPlan{}, fmt.Errorf("create travel plan: %w", err)
	}
	p, err := validate.TravelPlan(body)
	if err != nil {
		return models.TravelPlan{}, fmt.Errorf("create travel plan: %w", err)
	}
	s.log.Info(ctx, "travel plan created", "id", p.ID, "owner", p.OwnerUsername)
	return p, nil
}

func (s *travelPlanService) Update(ctx context.Context, existing models.TravelPlan, in models.TravelPlanInput) (models.TravelPlan, error) {
	if err := in.Validate(); err != nil {
		return models.TravelPlan{}, err
	}
	body, err := s.plans.Update(ctx, existing.ID, in.Payload(existing.OwnerUsername))
	if err != nil {
		return models.TravelPlan{}, fmt.Errorf("update travel plan %s: %w", existing.ID, err)
	}
	p, err := validate.TravelPlan(body)
	if err != nil {
		return models.TravelPlan{}, fmt.Errorf("update travel plan %s: %w", existing.ID, err)
	}
	s.log.Info(ctx, "travel plan updated", "id", p.ID)
	return p, nil
}

func (s *travelPlanService) Delete(ctx context.Context, id string) error {
	if err := s.plans.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete travel plan %s: %w", id, err)
	}
	s.log.Info(ctx, "travel plan deleted", "id", id)
	return nil
}
