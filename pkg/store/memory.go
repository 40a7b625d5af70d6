package store

import (
	"context"
	"sync"
)

// Memory is an in-process Backend. It backs tests and throwaway demo servers.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
	err  error

	lists, gets, puts int
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// FailWith makes every following call fail with err; nil restores service.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many List, Get and Put calls reached the backend.
func (m *Memory) Calls() (lists, gets, puts int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lists, m.gets, m.puts
}

func (m *Memory) List(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.err != nil {
		return nil, m.err
	}

	names := make([]string, 0, len(m.docs))
	for name := range m.docs {
		names = append(names, name)
	}
	return names, nil
}

func (m *Memory) Get(_ context.Context, filename string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.err != nil {
		return nil, m.err
	}

	data, ok := m.docs[filename]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *Memory) Put(_ context.Context, filename string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.err != nil {
		return m.err
	}

	m.docs[filename] = append([]byte(nil), content...)
	return nil
}
