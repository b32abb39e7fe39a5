package browser

import (
	"log/slog"
	"sync"

	"webtest-go/core/errs"
)

// Manager is the registry of live sessions, keyed by a caller-supplied
// execution-context id (one id per test worker). It enforces the handle
// lifecycle: absent -> live on Create, live -> absent on Quit, at most one
// live session per id at any time.
type Manager struct {
	factory *Factory
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session registry backed by the given factory.
// A nil logger falls back to slog.Default().
func NewManager(factory *Factory, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		factory:  factory,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Create builds a session for the given execution context. A second Create
// for an id whose session is still live is a browser error. On any factory
// failure the id stays absent.
func (m *Manager) Create(id string) (*Session, error) {
	m.mu.RLock()
	_, exists := m.sessions[id]
	m.mu.RUnlock()
	if exists {
		return nil, errs.Browser("session already active for context %q", id)
	}

	session, err := m.factory.Create()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if _, raced := m.sessions[id]; raced {
		m.mu.Unlock()
		_ = session.Quit()
		return nil, errs.Browser("session already active for context %q", id)
	}
	m.sessions[id] = session
	m.mu.Unlock()

	m.logger.Info("session registered", "context", id, "browser", session.Family().String())
	return session, nil
}

// Get returns the live session for the given execution context, if any.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Quit releases the session for the given execution context and removes it
// from the registry. Calling it with no live session is a no-op.
func (m *Manager) Quit(id string) error {
	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return nil
	}
	m.logger.Info("session released", "context", id)
	return session.Quit()
}

// QuitAll releases every live session. The first error encountered is
// returned after all sessions have been quit.
func (m *Manager) QuitAll() error {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	var firstErr error
	for id, session := range sessions {
		if err := session.Quit(); err != nil && firstErr == nil {
			firstErr = err
		}
		m.logger.Info("session released", "context", id)
	}
	return firstErr
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
