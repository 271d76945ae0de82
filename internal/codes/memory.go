package codes

import (
	"context"
	"sync"
	"time"
)

// MemoryStore mantiene los códigos en memoria del proceso. Un reinicio
// invalida todos los códigos pendientes; para despliegues con más de
// una instancia usar RedisStore.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	now func() time.Time
}

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Set(_ context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[email] = memoryEntry{
		code:      code,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Consume(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[email]
	if !ok {
		return ErrNoCode
	}

	if s.now().After(entry.expiresAt) {
		delete(s.entries, email)
		return ErrExpired
	}

	if entry.code != code {
		return ErrBadCode
	}

	delete(s.entries, email)
	return nil
}

var _ Store = (*MemoryStore)(nil)
