package cached

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
	sharedCache "github.com/davicafu/humanidadunida/internal/shared/infra/platform/cache"
)

const keyPrefix = "records:"

// listing es lo que se guarda en caché por colección: el resultado y el límite con el que se pidió.
type listing struct {
	Limit int                     `json:"limit"`
	Docs  []sharedDomain.Document `json:"docs"`
}

// Store decora un RecordStore cacheando los listados por colección.
// Insert y Update invalidan la clave antes de devolver; Count nunca se cachea.
//
// Cada colección lleva una generación que suben las escrituras. Un Find sólo
// guarda su resultado si la generación no cambió mientras leía, así una lectura
// lenta no puede reescribir un listado anterior a una escritura ya confirmada.
// La generación es local al proceso: entre réplicas con Redis compartido la
// ventana queda acotada por el TTL.
type Store struct {
	next  sharedDomain.RecordStore
	cache sharedCache.Cache
	ttl   time.Duration
	log   *zap.Logger

	mu   sync.Mutex
	gens map[string]uint64
}

var _ sharedDomain.RecordStore = (*Store)(nil)

func NewStore(next sharedDomain.RecordStore, cache sharedCache.Cache, ttl time.Duration, log *zap.Logger) *Store {
	return &Store{next: next, cache: cache, ttl: ttl, log: log, gens: make(map[string]uint64)}
}

func (s *Store) generation(collection string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[collection]
}

// written sube la generación e invalida bajo el mismo lock que usa Find para guardar.
func (s *Store) written(ctx context.Context, collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[collection]++
	sharedCache.Invalidate(ctx, s.cache, keyPrefix+collection, s.log)
}

func (s *Store) Insert(ctx context.Context, collection string, doc sharedDomain.Document) error {
	if err := s.next.Insert(ctx, collection, doc); err != nil {
		return err
	}
	s.written(ctx, collection)
	return nil
}

func (s *Store) Find(ctx context.Context, collection string, limit int) ([]sharedDomain.Document, error) {
	key := keyPrefix + collection

	var cachedListing listing
	hit, err := s.cache.Get(ctx, key, &cachedListing)
	if err != nil {
		s.log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit && cachedListing.Limit == limit {
		s.log.Debug("Cache hit", zap.String("key", key))
		return cachedListing.Docs, nil
	}

	gen := s.generation(collection)
	docs, err := s.next.Find(ctx, collection, limit)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gens[collection] == gen {
		sharedCache.TrySet(ctx, s.cache, key, listing{Limit: limit, Docs: docs}, s.ttl, s.log)
	} else {
		s.log.Debug("Listado descartado, hubo escrituras durante la lectura", zap.String("key", key))
	}
	s.mu.Unlock()
	return docs, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, patch sharedDomain.Document) (int64, error) {
	matched, err := s.next.Update(ctx, collection, id, patch)
	if err != nil {
		return 0, err
	}
	if matched > 0 {
		s.written(ctx, collection)
	}
	return matched, nil
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	return s.next.Count(ctx, collection)
}
