package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wisecache/wisecache/internal/domain"
)

// MemoryStore is an in-process Store for tests and local development. It
// honors the same (owner, original_url) uniqueness guard as the pg store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]domain.KnowledgeRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[uuid.UUID]domain.KnowledgeRecord),
	}
}

func (s *MemoryStore) FindByURL(ctx context.Context, owner uuid.UUID, url string) (domain.KnowledgeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.OwnerID == owner && r.OriginalURL == url {
			return r, nil
		}
	}

	return domain.KnowledgeRecord{}, ErrNotFound
}

func (s *MemoryStore) Insert(ctx context.Context, record domain.KnowledgeRecord) (domain.KnowledgeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.OwnerID == record.OwnerID && r.OriginalURL == record.OriginalURL {
			return domain.KnowledgeRecord{}, ErrDuplicate
		}
	}

	record.ID = uuid.New()
	record.CreatedAt = time.Now().UTC()
	s.records[record.ID] = record

	return record, nil
}

func (s *MemoryStore) ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.KnowledgeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []domain.KnowledgeRecord
	for _, r := range s.records {
		if r.OwnerID == owner {
			records = append(records, r)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records, nil
}

func (s *MemoryStore) CountByOwner(ctx context.Context, owner uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.records {
		if r.OwnerID == owner {
			count++
		}
	}

	return count, nil
}

func (s *MemoryStore) DeleteByID(ctx context.Context, id uuid.UUID, owner uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok || r.OwnerID != owner {
		return ErrNotFound
	}
	delete(s.records, id)

	return nil
}
