package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/travelplanner/internal/client/guard"
	"github.com/dmitrijs2005/travelplanner/internal/client/listsync"
	"github.com/dmitrijs2005/travelplanner/internal/client/models"
	"github.com/dmitrijs2005/travelplanner/internal/client/query"
	"github.com/dmitrijs2005/travelplanner/internal/client/services"
)

func planID(p models.TravelPlan) string { return p.ID }

// plansView mounts a fresh controller and loads the plans visible to the
// current identity.
func (a *App) plansView(ctx context.Context) error {
	a.planList = listsync.New[models.TravelPlan](a.travelPlanService.List, a.travelPlanService.Delete, planID, a.log)
	err := a.planList.Load(ctx, query.TravelPlans(*a.identity))
	a.renderPlans()
	return err
}

func (a *App) renderPlans() {
	title := "My Travel Plans"
	if a.isAdmin() {
		title = "All Travel Plans"
	}
	a.println(title)

	s := a.planList.Snapshot()
	switch s.Status {
	case listsync.Loading:
		a.println("Loading...")
		return
	case listsync.Failed:
		a.println(services.Message(services.OpListPlans, s.Err))
		return
	}
	if len(s.Items) == 0 {
		a.println("No travel plans found. Create your first plan!")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	if a.isAdmin() {
		fmt.Fprintln(tw, "ID\tNAME\tCOUNTRY\tOWNER\tDESCRIPTION")
		for _, p := range s.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Country, p.OwnerUsername, p.Description)
		}
	} else {
		fmt.Fprintln(tw, "ID\tNAME\tCOUNTRY\tDESCRIPTION")
		for _, p := range s.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Country, p.Description)
		}
	}
	_ = tw.Flush()
}

// DeletePlan asks for confirmation and deletes a plan from the plans view,
// opening the view first if needed. The row disappears only once the server
// has confirmed the delete.
func (a *App) DeletePlan(ctx context.Context, id string) error {
	if a.planList == nil {
		if err := a.Navigate(ctx, guard.PathPlans); err != nil {
			return err
		}
		if a.planList == nil {
			return nil
		}
	}

	ok, err := confirm(a.reader, "Are you sure you want to delete this travel plan?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.planList.Delete(ctx, id); err != nil {
		a.println(services.Message(services.OpDeletePlan, err))
		return err
	}
	a.println("Travel plan deleted.")
	a.renderPlans()
	return nil
}

// planFormView runs the create form when id is empty and the edit form
// otherwise. The edit form loads the plan first and keeps its owner.
func (a *App) planFormView(ctx context.Context, id string) error {
	var (
		existing models.TravelPlan
		current  models.TravelPlanInput
		editing  = id != ""
	)
	if editing {
		p, err := a.travelPlanService.Get(ctx, id)
		if err != nil {
			a.println(services.Message(services.OpLoadPlan, err))
			return err
		}
		existing, current = p, p.Input()
		a.println("Edit Travel Plan (press Enter to keep the current value)")
	} else {
		a.println("Create Travel Plan")
	}

	in, err := a.readPlanInput(current)
	if err != nil {
		return err
	}

	var (
		saved models.TravelPlan
		op    = services.OpCreatePlan
		verb  = "created"
	)
	if editing {
		op, verb = services.OpUpdatePlan, "updated"
		saved, err = a.travelPlanService.Update(ctx, existing, in)
	} else {
		saved, err = a.travelPlanService.Create(ctx, *a.identity, in)
	}
	if err != nil {
		a.println(services.Message(op, err))
		return err
	}

	a.log.Debug(ctx, "travel plan saved", "id", saved.ID)
	a.printf("Travel plan %s: Your travel plan has been successfully %s.\n", verb, verb)
	return a.Navigate(ctx, guard.PathPlans)
}

func (a *App) readPlanInput(current models.TravelPlanInput) (models.TravelPlanInput, error) {
	name, err := getSimpleText(a.reader, withCurrent("Name", current.Name), a.out)
	if err != nil {
		return models.TravelPlanInput{}, err
	}
	description, err := getSimpleText(a.reader, withCurrent("Description", current.Description), a.out)
	if err != nil {
		return models.TravelPlanInput{}, err
	}
	country, err := GetCountry(a.reader, current.Country, a.out)
	if err != nil {
		return models.TravelPlanInput{}, err
	}
	return models.TravelPlanInput{
		Name:        orDefault(name, current.Name),
		Description: orDefault(description, current.Description),
		Country:     country,
	}, nil
}

func withCurrent(label, current string) string {
	if current == "" {
		return label
	}
	return fmt.Sprintf("%s [%s]", label, current)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
