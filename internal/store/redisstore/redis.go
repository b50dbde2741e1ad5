// Package redisstore persists registry state as a JSON blob in Redis
// under the fixed namespace key.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/store"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

type Options struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisStore(ctx context.Context, opts Options) (store.Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load(ctx context.Context) (*registry.State, error) {
	data, err := s.client.Get(ctx, store.Namespace).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var state registry.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode persisted state: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, state registry.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	// no TTL: registry state lives until replaced
	return s.client.Set(ctx, store.Namespace, data, 0).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
