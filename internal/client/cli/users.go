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

func accountID(a models.Account) string { return a.ID }

func (a *App) usersView(ctx context.Context) error {
	q, ok := query.Accounts(*a.identity)
	if !ok {
		return nil
	}
	a.userList = listsync.New[models.Account](a.accountService.List, a.accountService.Delete, accountID, a.log)
	err := a.userList.Load(ctx, q)
	a.renderUsers()
	return err
}

func (a *App) renderUsers() {
	a.println("User Management")

	s := a.userList.Snapshot()
	switch s.Status {
	case listsync.Loading:
		a.println("Loading...")
		return
	case listsync.Failed:
		a.println(services.Message(services.OpListUsers, s.Err))
		return
	}
	if len(s.Items) == 0 {
		a.println("No users found.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL")
	for _, u := range s.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Username, u.Email)
	}
	_ = tw.Flush()
}

// DeleteUser asks for confirmation and deletes an account from the user
// management view, opening the view first if needed.
func (a *App) DeleteUser(ctx context.Context, id string) error {
	if a.userList == nil {
		if err := a.Navigate(ctx, guard.PathUsers); err != nil {
			return err
		}
		if a.userList == nil {
			return nil
		}
	}

	ok, err := confirm(a.reader, "Are you sure you want to delete this user?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.userList.Delete(ctx, id); err != nil {
		a.println(services.Message(services.OpDeleteUser, err))
		return err
	}
	a.println("User deleted.")
	a.renderUsers()
	return nil
}
