package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/refi/refi-calculator/internal/domain"
)

const (
	inputKeyPrefix    = "refi:inputs:"
	analysisKeyPrefix = "refi:analysis:"
)

// NewRedisClient connects to Redis and checks the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

// RedisStore is an InputStore backed by Redis. Inputs are kept as JSON with
// no expiry.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Save stores the inputs under a new identifier
func (r *RedisStore) Save(ctx context.Context, in domain.LoanInputs) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("encode inputs: %w", err)
	}
	id := NewID()
	if err := r.client.Set(ctx, inputKeyPrefix+id, data, 0).Err(); err != nil {
		return "", fmt.Errorf("save inputs: %w", err)
	}
	return id, nil
}

// Get returns the inputs saved under id
func (r *RedisStore) Get(ctx context.Context, id string) (domain.LoanInputs, error) {
	key, err := ParseID(id)
	if err != nil {
		return domain.LoanInputs{}, err
	}
	data, err := r.client.Get(ctx, inputKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.LoanInputs{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return domain.LoanInputs{}, fmt.Errorf("load inputs: %w", err)
	}
	var in domain.LoanInputs
	if err := json.Unmarshal(data, &in); err != nil {
		return domain.LoanInputs{}, fmt.Errorf("decode inputs %s: %w", key, err)
	}
	return in, nil
}

// RedisCache is an AnalysisCache backed by Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache caches analyses for ttl; ttl <= 0 keeps them indefinitely
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns a cached analysis
func (r *RedisCache) Get(ctx context.Context, key string) (*domain.Analysis, bool, error) {
	data, err := r.client.Get(ctx, analysisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	var a domain.Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return &a, true, nil
}

// Set caches an analysis
func (r *RedisCache) Set(ctx context.Context, key string, a *domain.Analysis) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return r.client.Set(ctx, analysisKeyPrefix+key, data, r.ttl).Err()
}
