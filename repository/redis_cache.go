package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const configKeyPrefix = "dealconfig:"

// RedisCache stores saved configurations in redis so they survive
// restarts and are shared across instances.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, configKeyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, configKeyPrefix+key, value, 0).Err()
}
