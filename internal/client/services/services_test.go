package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/travelplanner/internal/client/apitest"
	"github.com/dmitrijs2005/travelplanner/internal/client/client"
	"github.com/dmitrijs2005/travelplanner/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/travelplanner/internal/client/session"
	"github.com/dmitrijs2005/travelplanner/internal/client/storage"
	"github.com/dmitrijs2005/travelplanner/internal/logging"
	"github.com/stretchr/testify/require"
)

type env struct {
	srv   *apitest.Server
	api   *client.APIClient
	store *session.Store
	repo  metadata.Repository
}

func setup(t *testing.T) env {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	srv := apitest.New(t)
	repo := metadata.NewSQLiteRepository(db)
	return env{
		srv:   srv,
		api:   client.NewAPIClient(srv.URL, time.Second, logging.Discard()),
		store: session.NewStore(repo, logging.Discard()),
		repo:  repo,
	}
}
