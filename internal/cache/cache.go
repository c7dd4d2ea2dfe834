// Package cache fournit le stockage clé/valeur durable des conteneurs
// d'état. Chaque conteneur écrit son état complet sous une clé fixe à
// chaque mutation et le relit entier au démarrage.
package cache

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Clés de persistance des conteneurs (héritées de la boutique d'origine)
const (
	KeyCart     = "lumiere-cart"
	KeyWishlist = "lumiere-wishlist"
	KeyAuth     = "lumiere-auth"
	KeyTheme    = "lumiere-theme"
)

// Store est l'abstraction clé/valeur des conteneurs d'état.
// Une clé absente retourne ("", false, nil) — jamais d'erreur "not found".
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// MemoryStore garde tout en mémoire (mode démo et tests)
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// RedisStore persiste l'état dans Redis, sans TTL : l'état d'un
// conteneur survit aux redémarrages tant qu'il n'est pas écrasé
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisStore) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
