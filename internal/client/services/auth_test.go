package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/travelplanner/internal/client/client"
	"github.com/dmitrijs2005/travelplanner/internal/client/models"
	"github.com/dmitrijs2005/travelplanner/internal/client/session"
	"github.com/dmitrijs2005/travelplanner/internal/client/validate"
	"github.com/dmitrijs2005/travelplanner/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	e := setup(t)
	e.srv.AddUser(models.Account{ID: "u1", Username: "alice", Email: "alice@example.com"}, "secret1")
	e.srv.AddUser(models.Account{ID: "u2", Username: "bob", Email: "bob@example.com"}, "secret2")
	auth := NewAuthService(e.api, e.store, logging.Discard())
	ctx := context.Background()

	id, err := auth.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: "u1", Username: "alice", Email: "alice@example.com", Role: models.RoleUser}, id)

	stored, err := auth.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, id, *stored)

	raw, err := e.repo.Get(ctx, session.Key)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret1")

	reqs := e.srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "password=secret1&username=alice", reqs[0].Query)
}

func TestLogin_AdminRole(t *testing.T) {
	e := setup(t)
	e.srv.AddUser(models.Account{ID: "a", Username: "root", Email: "root@example.com", IsAdmin: true}, "toor00")
	auth := NewAuthService(e.api, e.store, logging.Discard())

	id, err := auth.Login(context.Background(), models.Credentials{Username: "root", Password: "toor00"})
	require.NoError(t, err)
	assert.True(t, id.IsAdmin())
}

func TestLogin_WrongPassword(t *testing.T) {
	e := setup(t)
	e.srv.AddUser(models.Account{Username: "alice", Email: "alice@example.com"}, "secret1")
	auth := NewAuthService(e.api, e.store, logging.Discard())
	ctx := context.Background()

	_, err := auth.Login(ctx, models.Credentials{Username: "alice", Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.ErrorIs(t, err, validate.ErrNotExactlyOne)
	assert.Equal(t, "Invalid username or password", Message(OpLogin, err))

	id, err := auth.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestLogin_TwoMatchesIsInvalid(t *testing.T) {
	e := setup(t)
	e.srv.AddUser(models.Account{Username: "alice", Email: "a1@example.com"}, "secret1")
	e.srv.AddUser(models.Account{Username: "alice", Email: "a2@example.com"}, "secret1")
	auth := NewAuthService(e.api, e.store, logging.Discard())

	_, err := auth.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MalformedMatchIsInvalid(t *testing.T) {
	e := setup(t)
	e.srv.Respond(http.MethodGet, "/users", http.StatusOK, `[{"id":"1","username":"alice"}]`)
	auth := NewAuthService(e.api, e.store, logging.Discard())

	_, err := auth.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret1"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_ServerError(t *testing.T) {
	e := setup(t)
	e.srv.Fail(http.MethodGet, "/users", http.StatusInternalServerError)
	auth := NewAuthService(e.api, e.store, logging.Discard())

	_, err := auth.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret1"})
	require.ErrorIs(t, err, client.ErrRequestFailed)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, "An error occurred during login. Please try again.", Message(OpLogin, err))
}

func TestLogin_EmptyFormNeverReachesServer(t *testing.T) {
	e := setup(t)
	auth := NewAuthService(e.api, e.store, logging.Discard())

	_, err := auth.Login(context.Background(), models.Credentials{})
	require.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Empty(t, e.srv.Requests())
}

func TestLogout(t *testing.T) {
	e := setup(t)
	e.srv.AddUser(models.Account{Username: "alice", Email: "alice@example.com"}, "secret1")
	auth := NewAuthService(e.api, e.store, logging.Discard())
	ctx := context.Background()

	_, err := auth.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))
	require.NoError(t, auth.Logout(ctx))

	id, err := auth.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestCurrent_CorruptSessionIsLoggedOut(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	require.NoError(t, e.repo.Set(ctx, session.Key, []byte(`{"id":1}`)))
	auth := NewAuthService(e.api, e.store, logging.Discard())

	id, err := auth.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, id)

	raw, err := e.repo.Get(ctx, session.Key)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestRegister(t *testing.T) {
	e := setup(t)
	auth := NewAuthService(e.api, e.store, logging.Discard())
	ctx := context.Background()

	acc, err := auth.Register(ctx, models.NewAccount{Email: "carol@example.com", Username: "carol", Password: "hunter2", IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, "carol", acc.Username)
	assert.False(t, acc.IsAdmin)

	users := e.srv.Users()
	require.Len(t, users, 1)
	assert.False(t, users[0].IsAdmin)

	id, err := auth.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, id, "registration does not log in")
}

func TestRegister_InvalidForm(t *testing.T) {
	e := setup(t)
	auth := NewAuthService(e.api, e.store, logging.Discard())

	_, err := auth.Register(context.Background(), models.NewAccount{Email: "nope", Username: "ab", Password: "123"})
	require.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Contains(t, Message(OpRegister, err), "Please enter a valid email address")
	assert.Empty(t, e.srv.Requests())
}

func TestRegister_ServerError(t *testing.T) {
	e := setup(t)
	e.srv.Fail(http.MethodPost, "/users", http.StatusBadRequest)
	auth := NewAuthService(e.api, e.store, logging.Discard())

	_, err := auth.Register(context.Background(), models.NewAccount{Email: "carol@example.com", Username: "carol", Password: "hunter2"})
	require.ErrorIs(t, err, client.ErrRequestFailed)
	assert.Equal(t, "There was a problem creating your account.", Message(OpRegister, err))
}
