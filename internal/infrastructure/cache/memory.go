package cache

import (
	"context"
	"sync"
	"time"

	"github.com/falconsystemsai/UOA/internal/domain/model"
	"github.com/falconsystemsai/UOA/internal/domain/repository"
)

// MemoryRepository is a process-local ResponseCache used when Redis is not
// configured or unreachable, and by tests. Expiry is checked lazily on read.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	resp      *model.CachedResponse
	expiresAt time.Time
}

var _ repository.ResponseCache = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]memoryEntry)}
}

func (m *MemoryRepository) Get(_ context.Context, key string) (*model.CachedResponse, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock: a fresh Put may have replaced
		// the entry since the read lock was dropped.
		if current, ok := m.entries[key]; ok && time.Now().After(current.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, nil
	}
	return entry.resp, nil
}

func (m *MemoryRepository) Put(_ context.Context, key string, resp *model.CachedResponse, ttl time.Duration) error {
	m.mu.Lock()
	m.entries[key] = memoryEntry{resp: resp, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
	return nil
}
