package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/practiceos/console/pkg/metrics"
)

// RedisStore keeps entries in Redis so multiple console replicas share one
// cache.
type RedisStore struct {
	client  *redis.Client
	prefix  string
	metrics *metrics.Metrics
}

// NewRedisStore connects to Redis at url. metrics may be nil.
func NewRedisStore(url, prefix string, m *metrics.Metrics) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client, prefix: prefix, metrics: m}, nil
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, key string, out interface{}) (*Meta, bool) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Debug().Err(err).Str("key", key).Msg("redis get failed")
		}
		s.miss(key)
		return nil, false
	}
	meta, err := decode(raw, out)
	if err != nil {
		s.miss(key)
		return nil, false
	}
	s.hit(key)
	return meta, true
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := encode(value, ttl)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(key), data, ttl).Err()
}

func (s *RedisStore) Invalidate(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.key(key)
	}
	return s.client.Del(ctx, prefixed...).Err()
}

func (s *RedisStore) hit(key string) {
	if s.metrics != nil {
		s.metrics.CacheHits.WithLabelValues(resourceLabel(key)).Inc()
	}
}

func (s *RedisStore) miss(key string) {
	if s.metrics != nil {
		s.metrics.CacheMisses.WithLabelValues(resourceLabel(key)).Inc()
	}
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
