package registration

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores the pending registration under a fixed key. Used when
// REDIS_ADDR is configured so the slot survives instance replacement.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// NewRedisCacheFromAddr connects to addr and pings it with a short timeout.
// Returns nil if the server is unreachable; callers should fall back to the
// file backend.
func NewRedisCacheFromAddr(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return &RedisCache{client: client}
}

func (r *RedisCache) Save(p Pending) error {
	data, err := json.Marshal(p)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	if err := r.client.Set(context.Background(), pendingKey, data, 0).Err(); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

func (r *RedisCache) Load() (*Pending, error) {
	data, err := r.client.Get(context.Background(), pendingKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, &StorageError{Op: "load", Err: err}
	}
	var p Pending
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, nil
	}
	return &p, nil
}

func (r *RedisCache) Clear() error {
	if err := r.client.Del(context.Background(), pendingKey).Err(); err != nil {
		return &StorageError{Op: "clear", Err: err}
	}
	return nil
}
