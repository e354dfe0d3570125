package memory

import (
	"context"
	"sync"

	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
)

// Store guarda los documentos en memoria, por colección y en orden de inserción.
// Pensado para desarrollo local y tests.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]sharedDomain.Document
}

var _ sharedDomain.RecordStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{collections: make(map[string][]sharedDomain.Document)}
}

func (s *Store) Insert(ctx context.Context, collection string, doc sharedDomain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], sharedDomain.CloneDocument(doc))
	return nil
}

func (s *Store) Find(ctx context.Context, collection string, limit int) ([]sharedDomain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	out := make([]sharedDomain.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, sharedDomain.CloneDocument(d))
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, patch sharedDomain.Document) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.collections[collection] {
		if d["id"] != id {
			continue
		}
		updated := sharedDomain.CloneDocument(d)
		for k, v := range patch {
			updated[k] = v
		}
		s.collections[collection][i] = updated
		return 1, nil
	}
	return 0, nil
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.collections[collection])), nil
}
