// Package session owns the authenticated identity and the bearer credential.
// A single Manager is created at process start and injected into everything
// that needs to know who is logged in.
package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"pricehawk/internal/api"
	"pricehawk/internal/credential"
	"pricehawk/internal/model"
)

type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

type logger interface {
	Debugf(format string, v ...any)
	Errorf(format string, v ...any)
}

type Manager struct {
	api    *api.Client
	creds  credential.Store
	logger logger

	mu    sync.Mutex
	state State
	user  model.User
}

func NewManager(apiClient *api.Client, creds credential.Store, l logger) *Manager {
	return &Manager{
		api:    apiClient,
		creds:  creds,
		logger: l,
		state:  StateInitializing,
	}
}

// Restore runs once at startup. With no stored credential it settles in
// StateUnauthenticated without touching the network; with one it attaches the
// token and verifies it, clearing the credential again on any failure or a
// valid=false answer. Callers must not route to gated views before this
// returns.
func (m *Manager) Restore(ctx context.Context) State {
	token, err := m.creds.Get()
	if err != nil {
		if !errors.Is(err, credential.ErrNotFound) {
			m.logger.Errorf("Restore: error reading stored credential, err: %v", err)
		}
		return m.settle(StateUnauthenticated, model.User{})
	}

	m.api.SetToken(token)
	user, valid, err := m.api.Verify(ctx)
	if err != nil || !valid {
		if err != nil {
			m.logger.Debugf("Restore: stored credential rejected, err: %v", err)
		}
		m.api.ClearToken()
		if err := m.creds.Clear(); err != nil {
			m.logger.Errorf("Restore: error clearing stored credential, err: %v", err)
		}
		return m.settle(StateUnauthenticated, model.User{})
	}

	m.logger.Debugf("Restore: session restored for %s", user.Email)
	return m.settle(StateAuthenticated, user)
}

// Login adopts an identity and a credential freshly minted by a successful
// authentication call. No validation happens here. The session becomes
// authenticated even if persisting the credential fails; the returned error
// then only means the login will not survive a restart.
func (m *Manager) Login(user model.User, token string) error {
	m.api.SetToken(token)
	m.settle(StateAuthenticated, user)
	if err := m.creds.Set(token); err != nil {
		return errors.Wrap(err, "error persisting credential")
	}
	return nil
}

// Authenticate is the login flow: exchange credentials for a token, then
// adopt it.
func (m *Manager) Authenticate(ctx context.Context, email string, password string) (model.User, error) {
	user, token, err := m.api.Login(ctx, email, password)
	if err != nil {
		return model.User{}, err
	}
	if err := m.Login(user, token); err != nil {
		return user, err
	}
	return user, nil
}

func (m *Manager) Logout() error {
	m.api.ClearToken()
	m.settle(StateUnauthenticated, model.User{})
	if err := m.creds.Clear(); err != nil {
		return errors.Wrap(err, "error clearing stored credential")
	}
	return nil
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) User() model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

func (m *Manager) Authenticated() bool {
	return m.State() == StateAuthenticated
}

func (m *Manager) settle(state State, user model.User) State {
	m.mu.Lock()
	m.state = state
	m.user = user
	m.mu.Unlock()
	return state
}
