package session

import (
	"context"
	"sync"

	"github.com/cashfy/backend/internal/learning"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Manager keeps one session per user.
type Manager struct {
	store   Store
	lessons learning.Catalog
	opts    []Option

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	group    singleflight.Group
}

func NewManager(store Store, lessons learning.Catalog, opts ...Option) *Manager {
	return &Manager{
		store:    store,
		lessons:  lessons,
		opts:     opts,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Get returns the session of the user. It is loaded on first use.
// Concurrent calls for the same user share one load.
func (m *Manager) Get(ctx context.Context, userID uuid.UUID) (*Session, error) {
	if s, ok := m.cached(userID); ok {
		return s, nil
	}

	v, err, _ := m.group.Do(userID.String(), func() (any, error) {
		if s, ok := m.cached(userID); ok {
			return s, nil
		}

		// The load is shared with other callers and outlives this request
		s := New(userID, m.store, m.lessons, m.opts...)
		if err := s.Load(context.WithoutCancel(ctx)); err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.sessions[userID] = s
		m.mu.Unlock()

		return s, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Session), nil
}

func (m *Manager) cached(userID uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[userID]
	return s, ok
}

// Forget drops the session of the user. The next Get loads it again.
func (m *Manager) Forget(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}

// Len returns the number of loaded sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
