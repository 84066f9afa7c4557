package carrierconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"crosscall/pkg/domain"
	"crosscall/pkg/platform/sentinel"
)

// RedisStore persists carrier configuration in Redis, one JSON document per
// line. Suitable when several gateway instances must observe the same
// carrier provisioning data.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(id domain.LineID) string {
	return fmt.Sprintf("carriercfg:%s", id)
}

// Put replaces the configuration for a line.
func (s *RedisStore) Put(ctx context.Context, id domain.LineID, cfg Config) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal carrier config: %w", err)
	}
	if err := s.client.Set(ctx, key(id), payload, 0).Err(); err != nil {
		return fmt.Errorf("store carrier config: %w", err)
	}
	return nil
}

// Delete removes the configuration for a line.
func (s *RedisStore) Delete(ctx context.Context, id domain.LineID) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("delete carrier config: %w", err)
	}
	return nil
}

// ConfigFor returns the configuration for a line.
// Returns sentinel.ErrNotFound when no configuration exists, and a wrapped
// transport error when Redis is unreachable - callers decide how to degrade.
func (s *RedisStore) ConfigFor(ctx context.Context, id domain.LineID) (Config, error) {
	payload, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch carrier config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("decode carrier config: %w", err)
	}
	return cfg, nil
}
