package progress

import (
	"sync"

	"wathiq/internal/models"
	"wathiq/internal/storage"
)

// Manager hands out one Store per user, loading each user's aggregates from
// durable storage exactly once per process lifetime.
type Manager struct {
	mu      sync.Mutex
	adapter *storage.Adapter
	stores  map[int64]*Store
}

// NewManager creates a progress store manager over a storage adapter
func NewManager(adapter *storage.Adapter) *Manager {
	return &Manager{
		adapter: adapter,
		stores:  make(map[int64]*Store),
	}
}

// StoreFor returns the progress store for a user, loading it on first use
func (m *Manager) StoreFor(user *models.User) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[user.ID]; ok {
		return store
	}

	store := NewStore(m.adapter, user)
	m.stores[user.ID] = store
	return store
}
