// Package store is the console's shared read cache. Every entry is explicit
// about when it was fetched and how long it stays fresh, and invalidation is
// an explicit operation performed after each mutating upstream call rather
// than an implicit refetch.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/practiceos/console/pkg/metrics"
)

// Meta describes a cache entry's freshness.
type Meta struct {
	FetchedAt time.Time     `json:"fetched_at"`
	TTL       time.Duration `json:"ttl"`
}

// Store is a read-through cache for upstream records. Entries are scoped by
// key; callers build keys with Key so that token-scoped resources do not
// bleed across sessions.
type Store interface {
	// Get decodes the cached value into out and returns its metadata.
	// The second return is false when the key is absent or expired.
	Get(ctx context.Context, key string, out interface{}) (*Meta, bool)
	// Set caches value under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Invalidate drops the given keys.
	Invalidate(ctx context.Context, keys ...string) error
}

// Key builds a cache key from a resource name and scope parts.
func Key(resource string, parts ...string) string {
	if len(parts) == 0 {
		return resource
	}
	return resource + ":" + strings.Join(parts, ":")
}

type envelope struct {
	Meta
	Value json.RawMessage `json:"value"`
}

func encode(value interface{}, ttl time.Duration) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode cache value: %w", err)
	}
	return json.Marshal(envelope{
		Meta:  Meta{FetchedAt: time.Now(), TTL: ttl},
		Value: raw,
	})
}

func decode(data []byte, out interface{}) (*Meta, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode cache entry: %w", err)
	}
	if out != nil {
		if err := json.Unmarshal(env.Value, out); err != nil {
			return nil, fmt.Errorf("decode cache value: %w", err)
		}
	}
	meta := env.Meta
	return &meta, nil
}

// resourceLabel strips the scope so metrics are not token-cardinality bound.
func resourceLabel(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}

// MemoryStore keeps entries in-process.
type MemoryStore struct {
	cache   *gocache.Cache
	metrics *metrics.Metrics
}

// NewMemoryStore creates an in-process store. metrics may be nil.
func NewMemoryStore(defaultTTL, cleanupInterval time.Duration, m *metrics.Metrics) *MemoryStore {
	return &MemoryStore{
		cache:   gocache.New(defaultTTL, cleanupInterval),
		metrics: m,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string, out interface{}) (*Meta, bool) {
	raw, found := s.cache.Get(key)
	if !found {
		s.miss(key)
		return nil, false
	}
	meta, err := decode(raw.([]byte), out)
	if err != nil {
		s.miss(key)
		return nil, false
	}
	s.hit(key)
	return meta, true
}

func (s *MemoryStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := encode(value, ttl)
	if err != nil {
		return err
	}
	s.cache.Set(key, data, ttl)
	return nil
}

func (s *MemoryStore) Invalidate(_ context.Context, keys ...string) error {
	for _, key := range keys {
		s.cache.Delete(key)
	}
	return nil
}

func (s *MemoryStore) hit(key string) {
	if s.metrics != nil {
		s.metrics.CacheHits.WithLabelValues(resourceLabel(key)).Inc()
	}
}

func (s *MemoryStore) miss(key string) {
	if s.metrics != nil {
		s.metrics.CacheMisses.WithLabelValues(resourceLabel(key)).Inc()
	}
}
