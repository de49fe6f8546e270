package kv

import "sync"

// MemoryMedium is an in-process map driver. Nothing survives the process;
// it exists for tests and throwaway runs.
type MemoryMedium struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty in-memory medium.
func NewMemory() *MemoryMedium {
	return &MemoryMedium{data: map[string]string{}}
}

func (m *MemoryMedium) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryMedium) Set(key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
	return nil
}

func (m *MemoryMedium) Remove(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryMedium) Close() error { return nil }

// Len reports the number of stored keys. Test helper.
func (m *MemoryMedium) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
