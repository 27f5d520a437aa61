package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/travelplanner/internal/client/client"
	"github.com/dmitrijs2005/travelplanner/internal/client/config"
	"github.com/dmitrijs2005/travelplanner/internal/client/listsync"
	"github.com/dmitrijs2005/travelplanner/internal/client/models"
	"github.com/dmitrijs2005/travelplanner/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/travelplanner/internal/client/services"
	"github.com/dmitrijs2005/travelplanner/internal/client/session"
	"github.com/dmitrijs2005/travelplanner/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	authService       services.AuthService
	travelPlanService services.TravelPlanService
	accountService    services.AccountService

	reader *bufio.Reader
	out    io.Writer

	route    string
	identity *models.Identity
	planList *listsync.Controller[models.TravelPlan]
	userList *listsync.Controller[models.Account]
}

// NewApp wires the client stack on top of an opened local database and
// attaches it to the process's stdin and stdout.
func NewApp(c *config.Config, db *sql.DB, log logging.Logger) *App {
	return newApp(c, db, log, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, db *sql.DB, log logging.Logger, in io.Reader, out io.Writer) *App {
	api := client.NewAPIClient(c.APIBaseURL, c.RequestTimeout, log.With("component", "api"))
	store := session.NewStore(metadata.NewSQLiteRepository(db), log.With("component", "session"))

	return &App{
		config:            c,
		log:               log,
		authService:       services.NewAuthService(api, store, log.With("service", "auth")),
		travelPlanService: services.NewTravelPlanService(api, log.With("service", "travel-plans")),
		accountService:    services.NewAccountService(api, log.With("service", "accounts")),
		reader:            bufio.NewReader(in),
		out:               out,
	}
}

// Run shows the home route (which sends a stored identity on to the
// dashboard) and then serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to Travel Planner (type 'help' for commands)")
	a.log.Debug(ctx, "client started", "api", a.config.APIBaseURL, "database", a.config.DatabasePath)

	_ = a.Navigate(ctx, "/")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.identity != nil
}

func (a *App) isAdmin() bool {
	return a.identity != nil && a.identity.IsAdmin()
}

func (a *App) getStatus() string {
	s := a.route
	if a.identity != nil {
		s = fmt.Sprintf("%s@%s", a.identity.Username, a.route)
	}
	return s
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
