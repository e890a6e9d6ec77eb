package kvstore

import (
	"context"
	"sync"
)

// MemoryMedium is a process-local medium. ReadErr and WriteErr, when set,
// are returned by every subsequent read or write/delete, which lets tests
// stand in for corrupted or full storage.
type MemoryMedium struct {
	mu       sync.RWMutex
	entries  map[string]string
	ReadErr  error
	WriteErr error
}

// NewMemoryMedium creates an empty medium.
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{entries: make(map[string]string)}
}

// Read returns the value for key or ErrNotFound.
func (m *MemoryMedium) Read(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	value, ok := m.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Write stores the value for key.
func (m *MemoryMedium) Write(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.entries[key] = value
	return nil
}

// Delete removes key.
func (m *MemoryMedium) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	delete(m.entries, key)
	return nil
}

// Put seeds raw text, bypassing failure injection.
func (m *MemoryMedium) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

// Len returns the number of stored keys.
func (m *MemoryMedium) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
