package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 10 * time.Minute

// Memory — кэш в памяти процесса, для запуска без Redis.
type Memory struct {
	store *gocache.Cache
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}

	return &Memory{store: gocache.New(ttl, memoryCleanupInterval)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	val, found := m.store.Get(key)
	if !found {
		return "", false, nil
	}

	s, ok := val.(string)
	if !ok {
		return "", false, nil
	}

	return s, true, nil
}

func (m *Memory) Save(_ context.Context, key, value string) error {
	m.store.SetDefault(key, value)
	return nil
}
