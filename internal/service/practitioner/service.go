// Package practitioner serves the admin practitioner list. Per-practitioner
// editing goes through the setup orchestrator, which shares this package's
// cache key so saves invalidate the list.
package practitioner

import (
	"context"
	"fmt"
	"time"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/internal/store"
)

// Servicer defines the practitioner list reads.
type Servicer interface {
	List(ctx context.Context, token string) ([]*model.Practitioner, error)
}

// Service implements Servicer over the upstream client with a read cache.
type Service struct {
	api   apiclient.PractitionerAPI
	cache store.Store
	ttl   time.Duration
}

// NewService creates a practitioner service. cache may be nil.
func NewService(api apiclient.PractitionerAPI, cache store.Store, ttl time.Duration) *Service {
	return &Service{api: api, cache: cache, ttl: ttl}
}

// List returns the practice's practitioners, served from cache while fresh.
func (s *Service) List(ctx context.Context, token string) ([]*model.Practitioner, error) {
	key := store.Key("practitioners", token)
	var cached []*model.Practitioner
	if s.cache != nil {
		if _, ok := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	practitioners, err := s.api.ListPractitioners(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list practitioners: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, practitioners, s.ttl)
	}
	return practitioners, nil
}
