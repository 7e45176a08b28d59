// Package directory serves the patient-facing practice listing. Reads are
// public and shared across sessions, so they cache under unscoped keys.
package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/practiceos/console/internal/apiclient"
	"github.com/practiceos/console/internal/model"
	"github.com/practiceos/console/internal/store"
	"github.com/practiceos/console/pkg/errors"
)

// Servicer defines the directory reads.
type Servicer interface {
	ListPractices(ctx context.Context) ([]*model.PracticeListing, error)
	GetPractice(ctx context.Context, practiceUUID string) (*model.PracticeRecord, error)
	Refresh(ctx context.Context) ([]*model.PracticeListing, error)
}

// Service implements Servicer over the upstream client with a read cache.
type Service struct {
	api   apiclient.DirectoryAPI
	cache store.Store
	ttl   time.Duration
}

// NewService creates a directory service. cache may be nil.
func NewService(api apiclient.DirectoryAPI, cache store.Store, ttl time.Duration) *Service {
	return &Service{api: api, cache: cache, ttl: ttl}
}

// ListPractices returns every listed practice.
func (s *Service) ListPractices(ctx context.Context) ([]*model.PracticeListing, error) {
	key := store.Key("directory")
	var cached []*model.PracticeListing
	if s.cache != nil {
		if _, ok := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	practices, err := s.api.ListPractices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list practices: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, practices, s.ttl)
	}
	return practices, nil
}

// GetPractice returns one practice's public profile.
func (s *Service) GetPractice(ctx context.Context, practiceUUID string) (*model.PracticeRecord, error) {
	if practiceUUID == "" {
		return nil, errors.NewValidation("practice uuid is required")
	}
	key := store.Key("directory_practice", practiceUUID)
	var cached model.PracticeRecord
	if s.cache != nil {
		if _, ok := s.cache.Get(ctx, key, &cached); ok {
			return &cached, nil
		}
	}
	record, err := s.api.GetPractice(ctx, practiceUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get practice %s: %w", practiceUUID, err)
	}
	if s.cache != nil && record != nil {
		_ = s.cache.Set(ctx, key, record, s.ttl)
	}
	return record, nil
}

// Refresh drops the cached listing and refetches it from upstream.
func (s *Service) Refresh(ctx context.Context) ([]*model.PracticeListing, error) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, store.Key("directory")); err != nil {
			return nil, fmt.Errorf("failed to invalidate practice listing: %w", err)
		}
	}
	return s.ListPractices(ctx)
}
