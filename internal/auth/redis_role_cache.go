package auth

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/rueidis"
)

const roleKeyPrefix = "roles:"

// roleStore is the minimal key/value surface the cache needs. Get
// reports a plain miss with ok=false; any error means the store is
// unhealthy, not that the key is absent.
type roleStore interface {
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisRoleCache caches resolved role snapshots in front of another
// RoleDirectory. Cache errors are logged and treated as misses so an
// unreachable redis never blocks authentication.
type RedisRoleCache struct {
	store roleStore
	next  RoleDirectory
	ttl   time.Duration
}

func NewRedisRoleCache(client rueidis.Client, next RoleDirectory, ttl time.Duration) *RedisRoleCache {
	return newRoleCache(&redisRoleStore{client: client}, next, ttl)
}

func newRoleCache(store roleStore, next RoleDirectory, ttl time.Duration) *RedisRoleCache {
	return &RedisRoleCache{
		store: store,
		next:  next,
		ttl:   ttl,
	}
}

func (r *RedisRoleCache) Resolve(ctx context.Context, userID string) (Principal, error) {
	key := roleKeyPrefix + userID

	payload, ok, err := r.store.Get(ctx, key)
	if err != nil {
		log.Printf("role cache read failed for user %s: %v", userID, err)
	} else if ok {
		var principal Principal
		if err := json.Unmarshal(payload, &principal); err == nil {
			return principal, nil
		}
	}

	principal, err := r.next.Resolve(ctx, userID)
	if err != nil {
		return Principal{}, err
	}

	if payload, err := json.Marshal(principal); err == nil {
		if err := r.store.Set(ctx, key, payload, r.ttl); err != nil {
			log.Printf("role cache write failed: %v", err)
		}
	}
	return principal, nil
}

func (r *RedisRoleCache) Invalidate(ctx context.Context, userID string) error {
	if err := r.store.Del(ctx, roleKeyPrefix+userID); err != nil {
		return err
	}
	return r.next.Invalidate(ctx, userID)
}

// redisRoleStore adapts a rueidis client to the roleStore surface.
type redisRoleStore struct {
	client rueidis.Client
}

func (s *redisRoleStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	cmd := s.client.B().Get().Key(key).Build()
	result := s.client.Do(ctx, cmd)
	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	payload, err := result.AsBytes()
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (s *redisRoleStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	cmd := s.client.B().Set().
		Key(key).
		Value(string(payload)).
		Ex(ttl).
		Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *redisRoleStore) Del(ctx context.Context, key string) error {
	cmd := s.client.B().Del().Key(key).Build()
	return s.client.Do(ctx, cmd).Error()
}
