package store

import (
	"context"
	"maps"
	"slices"
	"sync"
)

type memoryKey struct {
	userID string
	name   Name
}

// Memory is a [KeyValue] kept in process memory. It backs tests and throwaway runs.
type Memory struct {
	mu      sync.Mutex
	records map[memoryKey][]byte
}

func NewMemory() *Memory {
	return &Memory{
		mu:      sync.Mutex{},
		records: make(map[memoryKey][]byte),
	}
}

func (m *Memory) Load(_ context.Context, userID string, name Name) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[memoryKey{userID: userID, name: name}]
	if !ok {
		return nil, ErrAbsent
	}
	return slices.Clone(record), nil
}

func (m *Memory) Save(_ context.Context, userID string, name Name, record []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[memoryKey{userID: userID, name: name}] = slices.Clone(record)
	return nil
}

func (m *Memory) Update(
	_ context.Context, userID string, name Name, updateFn func(record []byte) ([]byte, error),
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := memoryKey{userID: userID, name: name}
	updated, err := updateFn(slices.Clone(m.records[key]))
	if err != nil {
		return err
	}
	m.records[key] = slices.Clone(updated)
	return nil
}

func (m *Memory) Delete(_ context.Context, userID string, name Name) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, memoryKey{userID: userID, name: name})
	return nil
}

// Users lists the users with at least one record.
func (m *Memory) Users() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make(map[string]struct{})
	for key := range m.records {
		users[key.userID] = struct{}{}
	}
	return slices.Sorted(maps.Keys(users))
}
