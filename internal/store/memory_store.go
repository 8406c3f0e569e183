package store

import (
	"sync"

	"readerd/pkg/domain"
)

// MemoryStore keeps readers in-process for tests and local runs without
// Postgres.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	readers map[int64]domain.Reader
	order   []int64
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{readers: make(map[int64]domain.Reader)}
}

// CreateReader assigns the next id and stores the record.
func (m *MemoryStore) CreateReader(name, email string) (domain.Reader, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r := domain.Reader{ID: m.nextID, Name: name, Email: email}
	m.readers[r.ID] = r
	m.order = append(m.order, r.ID)
	return r, nil
}

// ListReaders returns readers in insertion order.
func (m *MemoryStore) ListReaders() ([]domain.Reader, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Reader, 0, len(m.order))
	for _, id := range m.order {
		if r, ok := m.readers[id]; ok {
			res = append(res, r)
		}
	}
	return res, nil
}

// GetReader retrieves a reader by id.
func (m *MemoryStore) GetReader(id int64) (domain.Reader, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.readers[id]
	return r, ok, nil
}

// UpdateReader applies only the supplied fields and reports how many
// records changed (0 or 1).
func (m *MemoryStore) UpdateReader(id int64, fields domain.ReaderUpdate) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.readers[id]
	if !ok {
		return 0, nil
	}
	if fields.Name != nil {
		r.Name = *fields.Name
	}
	if fields.Email != nil {
		r.Email = *fields.Email
	}
	m.readers[id] = r
	return 1, nil
}

// DeleteReader removes a reader and reports how many records were removed.
func (m *MemoryStore) DeleteReader(id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.readers[id]; !ok {
		return 0, nil
	}
	delete(m.readers, id)
	filtered := m.order[:0]
	for _, item := range m.order {
		if item != id {
			filtered = append(filtered, item)
		}
	}
	m.order = filtered
	return 1, nil
}
