package analysis

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var (
	ErrEssayNotFound  = errors.New("essay not found")
	ErrRecordNotFound = errors.New("analysis record not found")
)

// Store persists essays and analysis records.
type Store interface {
	PutEssay(ctx context.Context, e Essay) error
	GetEssay(ctx context.Context, id string) (Essay, error)
	ListEssaysByUser(ctx context.Context, userID string) ([]Essay, error)
	PutRecord(ctx context.Context, rec Record) error
	GetRecord(ctx context.Context, id string) (Record, error)
	ListRecordsByEssay(ctx context.Context, essayID string) ([]Record, error)
}

type memoryStore struct {
	mu      sync.RWMutex
	essays  map[string]Essay
	records map[string]Record
}

// NewInMemoryStore is for tests and offline single-process use.
func NewInMemoryStore() Store {
	return &memoryStore{
		essays:  map[string]Essay{},
		records: map[string]Record{},
	}
}

func (m *memoryStore) PutEssay(_ context.Context, e Essay) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.essays[e.ID] = e
	return nil
}

func (m *memoryStore) GetEssay(_ context.Context, id string) (Essay, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.essays[id]
	if !ok {
		return Essay{}, ErrEssayNotFound
	}
	return e, nil
}

func (m *memoryStore) ListEssaysByUser(_ context.Context, userID string) ([]Essay, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Essay{}
	for _, e := range m.essays {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryStore) PutRecord(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec
	return nil
}

func (m *memoryStore) GetRecord(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return Record{}, ErrRecordNotFound
	}
	return rec, nil
}

func (m *memoryStore) ListRecordsByEssay(_ context.Context, essayID string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Record{}
	for _, rec := range m.records {
		if rec.EssayID == essayID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
