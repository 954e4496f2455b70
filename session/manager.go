package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned for session IDs the Manager does not know.
var ErrNotFound = errors.New("session not found")

// Manager keeps sessions in memory, keyed by ID. State is lost when the
// process exits.
type Manager struct {
	log logrus.FieldLogger

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(log logrus.FieldLogger) *Manager {
	return &Manager{
		log:      orDiscard(log),
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Create(ctx context.Context, config Config) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := New(config, m.log)
	if err != nil {
		return nil, errors.Wrap(err, "create session")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s

	m.log.WithFields(logrus.Fields{
		"session": s.ID(),
		"width":   config.Width,
		"height":  config.Height,
		"mines":   config.NumMines,
	}).Info("session created")
	return s, nil
}

func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "id %q", id)
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return errors.Wrapf(ErrNotFound, "id %q", id)
	}
	delete(m.sessions, id)

	m.log.WithField("session", id).Info("session deleted")
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
