package credential

import "sync"

// Memory holds the credential in process memory only. Used by tests and by
// runs that should not touch the system keyring.
type Memory struct {
	mu     sync.Mutex
	token  string
	stored bool
}

func (m *Memory) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.stored {
		return "", ErrNotFound
	}
	return m.token, nil
}

func (m *Memory) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.stored = true
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.stored = false
	return nil
}
