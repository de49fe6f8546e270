package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/familycar/datastore/config"
)

// redisMedium stores each key as a plain Redis string with no TTL.
type redisMedium struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedis connects to Redis (REDIS_ADDR / REDIS_PASSWORD) and verifies
// the connection with a ping.
func NewRedis() (Medium, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("kv/redis: ping: %w", err)
	}

	return &redisMedium{rdb: rdb, ctx: ctx}, nil
}

func (d *redisMedium) Get(key string) (string, bool, error) {
	val, err := d.rdb.Get(d.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv/redis: get %s: %w", key, err)
	}
	return val, true, nil
}

func (d *redisMedium) Set(key, value string) error {
	if err := d.rdb.Set(d.ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv/redis: set %s: %w", key, err)
	}
	return nil
}

func (d *redisMedium) Remove(key string) error {
	if err := d.rdb.Del(d.ctx, key).Err(); err != nil {
		return fmt.Errorf("kv/redis: remove %s: %w", key, err)
	}
	return nil
}

func (d *redisMedium) Close() error { return d.rdb.Close() }
