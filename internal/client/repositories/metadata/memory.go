package metadata

import (
	"context"
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryRepository keeps values in process memory. Nothing survives a
// restart; it backs tests and the "memory" store driver. mu makes
// MultiSet and MultiRemove visible all at once.
type MemoryRepository struct {
	mu sync.Mutex
	c  *gocache.Cache
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{c: gocache.New(gocache.NoExpiration, 0)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.c.Get(key)
	if !ok {
		return nil, nil
	}
	b, _ := v.([]byte)
	return append([]byte(nil), b...), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.c.Set(key, append([]byte(nil), value...), gocache.NoExpiration)
	return nil
}

func (r *MemoryRepository) MultiSet(_ context.Context, values map[string][]byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range values {
		r.c.Set(k, append([]byte(nil), v...), gocache.NoExpiration)
	}
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.c.Delete(key)
	return nil
}

func (r *MemoryRepository) MultiRemove(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		r.c.Delete(k)
	}
	return nil
}

// Len reports how many keys are stored.
func (r *MemoryRepository) Len() int {
	return r.c.ItemCount()
}
