package session_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricehawk/internal/api"
	"pricehawk/internal/credential"
	"pricehawk/internal/logger"
	"pricehawk/internal/session"
	"pricehawk/internal/testapi"
)

type fixture struct {
	backend *testapi.Server
	client  *api.Client
	creds   *credential.Memory
	manager *session.Manager
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	backend := testapi.New()
	backend.SeedUser("user@example.com", "hunter2", "Test User")

	srv := httptest.NewServer(backend.Router())
	t.Cleanup(srv.Close)

	l := logger.NewLogger(logger.LevelOff, io.Discard)
	client := api.NewClient(srv.Client(), srv.URL+"/api", l)
	creds := &credential.Memory{}
	return fixture{
		backend: backend,
		client:  client,
		creds:   creds,
		manager: session.NewManager(client, creds, l),
	}
}

func TestStateBeforeRestore(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, session.StateInitializing, f.manager.State())
	assert.False(t, f.manager.Authenticated())
}

func TestRestoreWithoutCredential(t *testing.T) {
	f := newFixture(t)

	state := f.manager.Restore(context.Background())
	assert.Equal(t, session.StateUnauthenticated, state)
	assert.False(t, f.manager.Authenticated())

	// No stored credential means no network traffic at all.
	assert.Equal(t, 0, f.backend.RequestCount())
}

func TestRestoreWithValidCredential(t *testing.T) {
	f := newFixture(t)

	_, token, err := f.client.Login(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)
	require.NoError(t, f.creds.Set(token))

	state := f.manager.Restore(context.Background())
	assert.Equal(t, session.StateAuthenticated, state)
	assert.True(t, f.manager.Authenticated())
	assert.Equal(t, "user@example.com", f.manager.User().Email)
	assert.Equal(t, "Test User", f.manager.User().Name)
}

func TestRestoreWithRejectedCredential(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.creds.Set("stale-or-garbage-token"))

	state := f.manager.Restore(context.Background())
	assert.Equal(t, session.StateUnauthenticated, state)

	// The bad credential is gone for good.
	_, err := f.creds.Get()
	assert.True(t, errors.Is(err, credential.ErrNotFound))

	// And the token is detached from the client.
	_, err = f.client.TrackedProducts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrUnauthorized))
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	f.manager.Restore(context.Background())

	user, err := f.manager.Authenticate(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, session.StateAuthenticated, f.manager.State())

	// The minted token is persisted and attached.
	token, err := f.creds.Get()
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = f.client.TrackedProducts(context.Background())
	assert.NoError(t, err)
}

func TestAuthenticateBadPassword(t *testing.T) {
	f := newFixture(t)
	f.manager.Restore(context.Background())

	_, err := f.manager.Authenticate(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrUnauthorized))
	assert.Equal(t, session.StateUnauthenticated, f.manager.State())

	_, err = f.creds.Get()
	assert.True(t, errors.Is(err, credential.ErrNotFound))
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	f.manager.Restore(context.Background())

	_, err := f.manager.Authenticate(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)

	require.NoError(t, f.manager.Logout())
	assert.Equal(t, session.StateUnauthenticated, f.manager.State())
	assert.Empty(t, f.manager.User().Email)

	_, err = f.creds.Get()
	assert.True(t, errors.Is(err, credential.ErrNotFound))

	_, err = f.client.TrackedProducts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrUnauthorized))
}

func TestRestoreAfterRestart(t *testing.T) {
	f := newFixture(t)
	f.manager.Restore(context.Background())

	_, err := f.manager.Authenticate(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)

	// A new manager over the same credential store stands in for a fresh
	// process start.
	l := logger.NewLogger(logger.LevelOff, io.Discard)
	f.client.ClearToken()
	restarted := session.NewManager(f.client, f.creds, l)

	state := restarted.Restore(context.Background())
	assert.Equal(t, session.StateAuthenticated, state)
	assert.Equal(t, "user@example.com", restarted.User().Email)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "initializing", session.StateInitializing.String())
	assert.Equal(t, "unauthenticated", session.StateUnauthenticated.String())
	assert.Equal(t, "authenticated", session.StateAuthenticated.String())
}
