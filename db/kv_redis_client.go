package db

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// KVRedisClient wraps the go-redis client behind the RedisClient
// interface used by the DAO layer.
type KVRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewKVRedisClient wraps an already-configured redis client.
func NewKVRedisClient(ctx context.Context, client *redis.Client) *KVRedisClient {
	return &KVRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *KVRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *KVRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Keys lists the keys matching the given pattern.
func (r *KVRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key.
func (r *KVRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *KVRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *KVRedisClient) GetContext() context.Context {
	return r.ctx
}
